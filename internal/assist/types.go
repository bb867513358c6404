package assist

// Style selects the polishing register.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleCasual       Style = "casual"
	StyleLively       Style = "lively"
	StyleConcise      Style = "concise"
	StyleDetailed     Style = "detailed"
)

// PolishInput is a text rewrite request. An unknown style silently maps to
// StyleProfessional.
type PolishInput struct {
	Text  string
	Style Style
}

// PolishOutput carries the rewritten text.
type PolishOutput struct {
	Text string
}

// AnalyzeNoteInput asks for filing suggestions for one note.
type AnalyzeNoteInput struct {
	Title   string
	Content string
	// Categories is the caller's category whitelist; when non-empty the
	// suggestion is forced onto it.
	Categories []string
}

// NoteFiling is the suggested classification for a note.
type NoteFiling struct {
	Category string   `json:"category"`
	Folder   string   `json:"folder"`
	Tags     []string `json:"tags"`
}
