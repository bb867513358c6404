package ruleparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser extracts a structured task from raw text using keyword and pattern
// heuristics. It performs no I/O and is fully deterministic: identical
// (text, reference time) pairs always yield identical output. It is the
// safety net behind AI-assisted parsing and must never fail.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string.
// e.g. "Asia/Shanghai"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var (
	sentenceMarks = "。．.!！?？"

	highPriorityKeywords = []string{"紧急", "重要", "高优先级", "urgent", "important", "high priority"}
	lowPriorityKeywords  = []string{"低优先级", "不急", "可选", "low priority", "not urgent"}

	daysFromNowRe  = regexp.MustCompile(`(\d+)\s*天[内后]|in (\d+) days?\b|(\d+) days? from now`)
	weeksFromNowRe = regexp.MustCompile(`(\d+)\s*周[内后]|in (\d+) weeks?\b|(\d+) weeks? from now`)

	subtaskMarkers   = []string{"包括", "需要", "including"}
	subtaskSeparator = regexp.MustCompile(`[，,、和]| and `)
)

// Parse extracts a task from text, resolving relative dates against ref.
func (p *Parser) Parse(text string, ref time.Time) Task {
	ref = ref.In(p.location)
	lower := strings.ToLower(text)

	task := Task{
		Title:       extractTitle(text),
		Description: text,
		Priority:    detectPriority(lower),
		Category:    DefaultCategory,
		Tags:        []string{},
		Subtasks:    extractSubtasks(text),
		TimeRange:   TimeRangeFlexible,
	}

	if due, ok := p.resolveDueDate(lower, ref); ok {
		task.DueDate = &due
	}

	if start, ok := p.resolveStartTime(lower, ref); ok {
		task.StartTime = &start
	}
	// EndTime is never populated by this parser.

	// Deadline means a due date and nothing else; a start time without an end
	// keeps the range flexible.
	switch {
	case task.StartTime != nil && task.EndTime != nil:
		task.TimeRange = TimeRangeSpecific
	case task.DueDate != nil && task.StartTime == nil && task.EndTime == nil:
		task.TimeRange = TimeRangeDeadline
	}

	return task
}

// extractTitle takes the text up to the first sentence-terminating mark, or
// the first 50 runes if none is found.
func extractTitle(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if strings.ContainsRune(sentenceMarks, r) {
			runes = runes[:i]
			break
		}
	}
	if len(runes) > MaxTitleRunes {
		runes = runes[:MaxTitleRunes]
	}
	return strings.TrimSpace(string(runes))
}

// detectPriority scans for urgency keywords; high wins over low.
func detectPriority(lower string) string {
	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}
	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

// mentionsDayAfterTomorrow reports a +2-day phrase.
func mentionsDayAfterTomorrow(lower string) bool {
	return strings.Contains(lower, "后天") || strings.Contains(lower, "day after tomorrow")
}

// mentionsTomorrow reports a +1-day phrase. The English "day after tomorrow"
// contains the substring "tomorrow", so it is cut out before matching; the CN
// pair 明天/后天 has no such overlap.
func mentionsTomorrow(lower string) bool {
	trimmed := strings.ReplaceAll(lower, "day after tomorrow", "")
	return strings.Contains(trimmed, "明天") || strings.Contains(trimmed, "tomorrow")
}

// resolveDueDate scans a fixed ordered list of relative-date patterns.
// First match wins; the longer day-after-tomorrow phrase is checked ahead of
// tomorrow. The result is the calendar date (midnight) in the parser's
// timezone.
func (p *Parser) resolveDueDate(lower string, ref time.Time) (time.Time, bool) {
	switch {
	case mentionsDayAfterTomorrow(lower):
		return p.startOfDay(ref.AddDate(0, 0, 2)), true
	case mentionsTomorrow(lower):
		return p.startOfDay(ref.AddDate(0, 0, 1)), true
	case strings.Contains(lower, "下周") || strings.Contains(lower, "next week"):
		return p.startOfDay(ref.AddDate(0, 0, 7)), true
	}

	if n, ok := firstNumber(daysFromNowRe.FindStringSubmatch(lower)); ok {
		return p.startOfDay(ref.AddDate(0, 0, n)), true
	}
	if n, ok := firstNumber(weeksFromNowRe.FindStringSubmatch(lower)); ok {
		return p.startOfDay(ref.AddDate(0, 0, n*7)), true
	}

	return time.Time{}, false
}

// resolveStartTime is only populated when "tomorrow" plus a named time of day
// both appear; the time of day maps to a fixed clock time.
func (p *Parser) resolveStartTime(lower string, ref time.Time) (time.Time, bool) {
	if !mentionsTomorrow(lower) {
		return time.Time{}, false
	}

	tomorrow := p.startOfDay(ref.AddDate(0, 0, 1))

	switch {
	case strings.Contains(lower, "上午") || strings.Contains(lower, "morning"):
		return tomorrow.Add(9 * time.Hour), true
	case strings.Contains(lower, "下午") || strings.Contains(lower, "afternoon"):
		return tomorrow.Add(14 * time.Hour), true
	case strings.Contains(lower, "晚上") || strings.Contains(lower, "evening"):
		return tomorrow.Add(19 * time.Hour), true
	}

	return time.Time{}, false
}

// extractSubtasks splits the remainder after a list-introducing marker on
// common separators, capped at MaxSubtasks entries.
func extractSubtasks(text string) []string {
	var remainder string
	for _, marker := range subtaskMarkers {
		if idx := strings.Index(text, marker); idx >= 0 {
			remainder = text[idx+len(marker):]
			break
		}
	}
	if remainder == "" {
		return nil
	}

	parts := subtaskSeparator.Split(remainder, -1)
	subtasks := make([]string, 0, MaxSubtasks)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subtasks = append(subtasks, part)
		if len(subtasks) == MaxSubtasks {
			break
		}
	}
	return subtasks
}

// startOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// firstNumber returns the first non-empty capture group as an int.
func firstNumber(matches []string) (int, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	for _, m := range matches[1:] {
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
