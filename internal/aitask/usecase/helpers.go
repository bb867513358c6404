package usecase

import (
	"regexp"
	"strings"
)

// rawTask mirrors the model's wire shape before validation. Timestamps stay
// strings here: layout tolerance is handled per field during validation.
type rawTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	DueDate     *string  `json:"due_date"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	Subtasks    []string `json:"subtasks"`
	TimeRange   string   `json:"time_range"`
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	matches := codeFenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first { or [ and last } or ]
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
