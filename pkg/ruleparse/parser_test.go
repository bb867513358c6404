package ruleparse_test

import (
	"testing"
	"time"

	"cortex-workspace/pkg/ruleparse"
)

func mustParser(t *testing.T) *ruleparse.Parser {
	t.Helper()
	p, err := ruleparse.NewParser("Asia/Shanghai")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func refTime(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	return time.Date(2026, 3, 10, 15, 30, 0, 0, loc)
}

func TestNewParser_InvalidTimezone(t *testing.T) {
	if _, err := ruleparse.NewParser("Not/AZone"); err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestParse_TomorrowAfternoonMeeting(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)

	task := p.Parse("明天下午要开会", ref)

	if task.Title != "明天下午要开会" {
		t.Errorf("title = %q", task.Title)
	}
	if task.Priority != ruleparse.PriorityMedium {
		t.Errorf("priority = %q, want medium", task.Priority)
	}
	if task.StartTime == nil {
		t.Fatal("expected start time for 明天下午")
	}
	wantStart := time.Date(2026, 3, 11, 14, 0, 0, 0, ref.Location())
	if !task.StartTime.Equal(wantStart) {
		t.Errorf("start time = %v, want %v", task.StartTime, wantStart)
	}
	if task.EndTime != nil {
		t.Errorf("end time should never be set, got %v", task.EndTime)
	}
	// Tomorrow also sets a due date, but a start time without an end keeps
	// the range flexible: deadline means a due date and nothing else.
	if task.DueDate == nil {
		t.Fatal("expected due date for 明天")
	}
	if task.TimeRange != ruleparse.TimeRangeFlexible {
		t.Errorf("time range = %q, want flexible", task.TimeRange)
	}
}

func TestParse_UrgentDeadlineInThreeDays(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)

	task := p.Parse("紧急：3天内完成报告", ref)

	if task.Priority != ruleparse.PriorityHigh {
		t.Errorf("priority = %q, want high", task.Priority)
	}
	if task.DueDate == nil {
		t.Fatal("expected due date")
	}
	want := time.Date(2026, 3, 13, 0, 0, 0, 0, ref.Location())
	if !task.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", task.DueDate, want)
	}
	if task.TimeRange != ruleparse.TimeRangeDeadline {
		t.Errorf("time range = %q, want deadline", task.TimeRange)
	}
}

func TestParse_LowPriorityKeywords(t *testing.T) {
	p := mustParser(t)
	task := p.Parse("不急，有空整理一下照片", refTime(t))
	if task.Priority != ruleparse.PriorityLow {
		t.Errorf("priority = %q, want low", task.Priority)
	}
}

func TestParse_HighBeatsLow(t *testing.T) {
	p := mustParser(t)
	task := p.Parse("重要但不急的事情", refTime(t))
	if task.Priority != ruleparse.PriorityHigh {
		t.Errorf("priority = %q, want high when both keyword classes appear", task.Priority)
	}
}

func TestParse_TitleStopsAtSentenceMark(t *testing.T) {
	p := mustParser(t)
	task := p.Parse("写周报。记得抄送给经理", refTime(t))
	if task.Title != "写周报" {
		t.Errorf("title = %q, want 写周报", task.Title)
	}
	if task.Description != "写周报。记得抄送给经理" {
		t.Errorf("description should keep full text, got %q", task.Description)
	}
}

func TestParse_TitleCappedAt50Runes(t *testing.T) {
	p := mustParser(t)
	long := ""
	for i := 0; i < 80; i++ {
		long += "长"
	}
	task := p.Parse(long, refTime(t))
	if got := len([]rune(task.Title)); got != 50 {
		t.Errorf("title rune length = %d, want 50", got)
	}
}

func TestParse_SubtasksCappedAtThree(t *testing.T) {
	p := mustParser(t)
	task := p.Parse("准备年会，包括订场地，发邀请，买礼品，排节目", refTime(t))
	if len(task.Subtasks) != 3 {
		t.Fatalf("subtasks = %v, want 3 entries", task.Subtasks)
	}
	if task.Subtasks[0] != "订场地" {
		t.Errorf("first subtask = %q", task.Subtasks[0])
	}
}

func TestParse_DayAfterTomorrowDueDate(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)
	want := time.Date(2026, 3, 12, 0, 0, 0, 0, ref.Location())

	for _, text := range []string{
		"后天交设计稿",
		"finish the draft the day after tomorrow",
	} {
		task := p.Parse(text, ref)
		if task.DueDate == nil {
			t.Fatalf("%q: expected due date", text)
		}
		if !task.DueDate.Equal(want) {
			t.Errorf("%q: due date = %v, want %v", text, task.DueDate, want)
		}
	}
}

func TestParse_DayAfterTomorrowDoesNotAnchorStartTime(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)

	// Start times anchor to tomorrow only; "day after tomorrow morning" must
	// not produce a start time on the wrong day.
	task := p.Parse("review the slides the day after tomorrow morning", ref)
	if task.StartTime != nil {
		t.Errorf("start time = %v, want nil", task.StartTime)
	}
	if task.DueDate == nil {
		t.Fatal("expected due date")
	}
	want := time.Date(2026, 3, 12, 0, 0, 0, 0, ref.Location())
	if !task.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", task.DueDate, want)
	}

	// The plain tomorrow path keeps its morning anchor.
	task = p.Parse("明天上午检查一下后天的安排", ref)
	if task.StartTime == nil {
		t.Fatal("expected start time for 明天上午")
	}
	wantStart := time.Date(2026, 3, 11, 9, 0, 0, 0, ref.Location())
	if !task.StartTime.Equal(wantStart) {
		t.Errorf("start time = %v, want %v", task.StartTime, wantStart)
	}
}

func TestParse_NextWeekDueDate(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)
	task := p.Parse("下周交季度总结", ref)
	if task.DueDate == nil {
		t.Fatal("expected due date")
	}
	want := time.Date(2026, 3, 17, 0, 0, 0, 0, ref.Location())
	if !task.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", task.DueDate, want)
	}
}

func TestParse_NoSignalsAtAll(t *testing.T) {
	p := mustParser(t)
	task := p.Parse("随便记一下这个想法", refTime(t))

	if task.DueDate != nil || task.StartTime != nil || task.EndTime != nil {
		t.Error("expected no timestamps without date keywords")
	}
	if task.TimeRange != ruleparse.TimeRangeFlexible {
		t.Errorf("time range = %q, want flexible", task.TimeRange)
	}
	if task.Category != ruleparse.DefaultCategory {
		t.Errorf("category = %q, want %q", task.Category, ruleparse.DefaultCategory)
	}
	if task.Tags == nil || len(task.Tags) != 0 {
		t.Errorf("tags = %#v, want empty non-nil slice", task.Tags)
	}
}

func TestParse_Deterministic(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)
	text := "紧急：明天上午开会，包括准备材料，打印议程"

	first := p.Parse(text, ref)
	for i := 0; i < 5; i++ {
		again := p.Parse(text, ref)
		if first.Title != again.Title || first.Priority != again.Priority ||
			first.TimeRange != again.TimeRange || len(first.Subtasks) != len(again.Subtasks) {
			t.Fatal("identical input produced different output")
		}
		if (first.DueDate == nil) != (again.DueDate == nil) {
			t.Fatal("due date presence differs between runs")
		}
		if first.DueDate != nil && !first.DueDate.Equal(*again.DueDate) {
			t.Fatal("due date differs between runs")
		}
	}
}

func TestParse_EnglishKeywords(t *testing.T) {
	p := mustParser(t)
	ref := refTime(t)

	task := p.Parse("Urgent: finish the report in 3 days", ref)
	if task.Priority != ruleparse.PriorityHigh {
		t.Errorf("priority = %q, want high", task.Priority)
	}
	if task.DueDate == nil {
		t.Fatal("expected due date for 'in 3 days'")
	}
	want := time.Date(2026, 3, 13, 0, 0, 0, 0, ref.Location())
	if !task.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", task.DueDate, want)
	}
}
