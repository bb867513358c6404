package assist

// Default filing returned when the model cannot produce a usable suggestion.
const (
	DefaultCategory = "未分类"
	DefaultFolder   = "默认"
)

// DefaultTags is the tag list of the default filing.
func DefaultTags() []string { return []string{"笔记"} }
