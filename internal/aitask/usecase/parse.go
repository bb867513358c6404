package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cortex-workspace/internal/aitask"
	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

// Parse turns free-form text into structured tasks. The model path handles
// single- and multi-task replies; any structural failure (transport, malformed
// JSON, unrecognized shape, empty task list) degrades to the rule-based parser
// so the caller always gets at least one task.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input aitask.ParseInput) aitask.ParseOutput {
	ref := uc.referenceTime(input.Context)

	if strings.TrimSpace(input.Text) == "" {
		// Nothing for a model to work with; the rule parser still yields a
		// well-formed (if empty-titled) task.
		return aitask.ParseOutput{Tasks: []aitask.ParsedTask{uc.ruleFallback(input.Text, ref)}}
	}

	tasks, err := uc.parseWithModel(ctx, input, ref)
	if err != nil {
		uc.l.Warnf(ctx, "task parse degraded to rule-based parser: user_id=%s error=%v", sc.UserID, err)
		return aitask.ParseOutput{Tasks: []aitask.ParsedTask{uc.ruleFallback(input.Text, ref)}}
	}

	return aitask.ParseOutput{Tasks: tasks}
}

// parseWithModel runs the full model path: prompt, completion, decode, validate.
func (uc *implUseCase) parseWithModel(ctx context.Context, input aitask.ParseInput, ref time.Time) ([]aitask.ParsedTask, error) {
	req := &modelrouter.Request{
		Model: uc.gateway.DefaultTaskModel(),
		Messages: []modelrouter.Message{
			{Role: "system", Content: buildParsePrompt(input.Context, ref)},
			{Role: "user", Content: "请解析这个任务描述：" + input.Text},
		},
		Temperature: parseTemperature,
		MaxTokens:   parseMaxTokens,
	}

	result, err := uc.gateway.Complete(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	raw, err := decodeTasks(sanitizeJSONResponse(result.Content))
	if err != nil {
		uc.l.Errorf(ctx, "unusable model output: model=%s raw=%q error=%v", result.Model, result.Content, err)
		return nil, err
	}

	if len(raw) > aitask.MaxTasksPerParse {
		uc.l.Warnf(ctx, "model returned %d tasks, truncating to %d", len(raw), aitask.MaxTasksPerParse)
		raw = raw[:aitask.MaxTasksPerParse]
	}

	tasks := make([]aitask.ParsedTask, 0, len(raw))
	for _, rt := range raw {
		tasks = append(tasks, uc.validateTask(ctx, rt, input.Context))
	}
	return tasks, nil
}

// decodeTasks handles the two reply shapes the prompt allows: a bare task
// object, or an object with a "tasks" array. Anything else is a structural
// failure. An explicitly empty "tasks" array is also treated as structural so
// the caller still gets a task from the fallback path.
func decodeTasks(text string) ([]rawTask, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return nil, fmt.Errorf("%w: %v", aitask.ErrMalformedOutput, err)
	}

	if payload, ok := top["tasks"]; ok {
		var tasks []rawTask
		if err := json.Unmarshal(payload, &tasks); err != nil {
			return nil, fmt.Errorf("%w: %v", aitask.ErrMalformedOutput, err)
		}
		if len(tasks) == 0 {
			return nil, aitask.ErrEmptyTaskList
		}
		return tasks, nil
	}

	if _, ok := top["title"]; ok {
		var task rawTask
		if err := json.Unmarshal([]byte(text), &task); err != nil {
			return nil, fmt.Errorf("%w: %v", aitask.ErrMalformedOutput, err)
		}
		return []rawTask{task}, nil
	}

	return nil, aitask.ErrMalformedOutput
}

// validateTask coerces one decoded task into a valid ParsedTask. Validation is
// field-local: a bad field is defaulted or nulled without discarding the task.
func (uc *implUseCase) validateTask(ctx context.Context, rt rawTask, pc *aitask.ParseContext) aitask.ParsedTask {
	task := aitask.ParsedTask{
		Title:       rt.Title,
		Description: rt.Description,
		Priority:    aitask.Priority(rt.Priority),
		Tags:        rt.Tags,
		Subtasks:    rt.Subtasks,
	}

	if !task.Priority.Valid() {
		task.Priority = aitask.PriorityMedium
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	if len(task.Subtasks) > maxSubtasks {
		task.Subtasks = task.Subtasks[:maxSubtasks]
	}

	task.StartTime = uc.parseTimestamp(ctx, rt.StartTime, "start_time")
	task.EndTime = uc.parseTimestamp(ctx, rt.EndTime, "end_time")
	task.DueDate = uc.parseTimestamp(ctx, rt.DueDate, "due_date")
	task.Category = uc.validateCategory(rt.Category, pc)
	task.TimeRange = deriveTimeRange(task)

	return task
}

// validateCategory nulls a category that is absent from the caller-supplied
// whitelist. No whitelist means every category is rejected: the pipeline never
// invents categories the caller does not know about.
func (uc *implUseCase) validateCategory(category *string, pc *aitask.ParseContext) *string {
	if category == nil || *category == "" {
		return nil
	}
	if pc == nil {
		return nil
	}
	for _, known := range pc.Categories {
		if known == *category {
			return category
		}
	}
	return nil
}

// parseTimestamp is deliberately tolerant: models emit RFC3339, naive
// datetimes, and bare dates interchangeably. A value that matches none of the
// accepted layouts nulls the field, never the task.
func (uc *implUseCase) parseTimestamp(ctx context.Context, value *string, field string) *time.Time {
	if value == nil || *value == "" || *value == "null" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", *value, uc.location); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation("2006-01-02", *value, uc.location); err == nil {
		return &t
	}

	uc.l.Warnf(ctx, "dropping unparseable %s value %q", field, *value)
	return nil
}

// deriveTimeRange keeps the classification consistent with whatever timestamp
// fields survived validation, regardless of what the model claimed.
func deriveTimeRange(task aitask.ParsedTask) aitask.TimeRange {
	switch {
	case task.StartTime != nil && task.EndTime != nil:
		return aitask.TimeRangeSpecific
	case task.DueDate != nil && task.StartTime == nil && task.EndTime == nil:
		return aitask.TimeRangeDeadline
	default:
		return aitask.TimeRangeFlexible
	}
}

// referenceTime picks the relative-date anchor: the caller's context time when
// provided, otherwise now, always in the configured timezone.
func (uc *implUseCase) referenceTime(pc *aitask.ParseContext) time.Time {
	if pc != nil && !pc.CurrentTime.IsZero() {
		return pc.CurrentTime.In(uc.location)
	}
	return time.Now().In(uc.location)
}

// ruleFallback maps the deterministic parser's output onto the engine's task
// shape. The fallback result is returned as-is, without re-validation.
func (uc *implUseCase) ruleFallback(text string, ref time.Time) aitask.ParsedTask {
	rt := uc.rules.Parse(text, ref)
	category := rt.Category
	return aitask.ParsedTask{
		Title:       rt.Title,
		Description: rt.Description,
		Priority:    aitask.Priority(rt.Priority),
		StartTime:   rt.StartTime,
		EndTime:     rt.EndTime,
		DueDate:     rt.DueDate,
		Category:    &category,
		Tags:        rt.Tags,
		Subtasks:    rt.Subtasks,
		TimeRange:   aitask.TimeRange(rt.TimeRange),
	}
}
