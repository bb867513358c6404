package ruleparse

import "time"

// Priority values produced by the parser.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Time range classifications.
const (
	TimeRangeFlexible = "flexible"
	TimeRangeSpecific = "specific"
	TimeRangeDeadline = "deadline"
)

const (
	// DefaultCategory is the generic bucket assigned when no category can be
	// inferred without a model.
	DefaultCategory = "工作"

	// MaxSubtasks caps the number of extracted subtasks.
	MaxSubtasks = 3

	// MaxTitleRunes caps the extracted title length.
	MaxTitleRunes = 50
)

// Task is the best-effort structured task extracted from raw text.
type Task struct {
	Title       string
	Description string
	Priority    string
	StartTime   *time.Time
	EndTime     *time.Time
	DueDate     *time.Time
	Category    string
	Tags        []string
	Subtasks    []string
	TimeRange   string
}
