package chat

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one prior conversation message supplied by the caller. The
// dispatcher holds no session state; history arrives with every call.
type Turn struct {
	Role    Role
	Content string
}

// DataOverview summarizes the caller's workspace for the system prompt.
type DataOverview struct {
	NotesCount int
	TasksCount int
	Categories []string
}

// ViewingKind distinguishes what the user has open alongside the chat.
type ViewingKind string

const (
	ViewingNote ViewingKind = "note"
	ViewingTask ViewingKind = "task"
)

// ViewingContext describes the item the user is currently looking at, when
// the caller chooses to share it.
type ViewingContext struct {
	Kind     ViewingKind
	Title    string
	Content  string // note body or task description
	Status   string // task only
	Priority string // task only
}

// DispatchInput is one conversational command.
type DispatchInput struct {
	Text     string
	Model    string // optional override; empty means the configured chat default
	History  []Turn
	Overview *DataOverview
	Viewing  *ViewingContext
}

// ResponseType classifies a dispatcher reply.
type ResponseType string

const (
	ResponseMessage ResponseType = "message"
	ResponseAction  ResponseType = "action"
)

// ActionDetails describes a structured command the model extracted.
// Params stays schemaless: the dispatcher relays intent, execution and
// validation belong to the layer that performs the action.
type ActionDetails struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// DispatchOutput is the dispatcher's reply. Action is non-nil only when
// ResponseType is ResponseAction.
type DispatchOutput struct {
	ResponseType ResponseType   `json:"response_type"`
	Content      string         `json:"content"`
	Action       *ActionDetails `json:"action_details,omitempty"`
}
