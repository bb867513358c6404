package aitask

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether the priority is one of the known levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TimeRange classifies how precisely a task's timing is specified.
type TimeRange string

const (
	TimeRangeFlexible TimeRange = "flexible"
	TimeRangeSpecific TimeRange = "specific"
	TimeRangeDeadline TimeRange = "deadline"
)

// ParsedTask is a validated structured task extracted from free-form text.
// StartTime+EndTime set together imply TimeRangeSpecific; a DueDate with no
// start/end implies TimeRangeDeadline; otherwise TimeRangeFlexible.
type ParsedTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	DueDate     *time.Time `json:"due_date"`
	Category    *string    `json:"category"`
	Tags        []string   `json:"tags"`
	Subtasks    []string   `json:"subtasks"`
	TimeRange   TimeRange  `json:"time_range"`
}

// ParseContext carries optional per-call lookup data supplied by external
// collaborators. Nothing in it is cached between calls.
type ParseContext struct {
	SplitTasks  bool      // caller explicitly wants multi-task splitting
	Projects    []string  // known project names
	Categories  []string  // category whitelist
	CurrentTime time.Time // reference time for relative-date resolution
}

// ParseInput is the input for natural-language task parsing.
type ParseInput struct {
	Text    string
	Context *ParseContext
}

// ParseOutput always carries at least one task: a single-task model reply is
// wrapped, and structural failures degrade to the rule-based parser.
type ParseOutput struct {
	Tasks []ParsedTask
}
