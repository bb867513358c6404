package http

import (
	"time"

	"cortex-workspace/internal/aitask"
	"cortex-workspace/pkg/modelrouter"
	"cortex-workspace/pkg/response"
)

// taskResp is the wire shape of a parsed task: start/end render as naive
// ISO timestamps, the due date as a calendar date, absent fields as null.
type taskResp struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    aitask.Priority    `json:"priority"`
	StartTime   *response.DateTime `json:"start_time"`
	EndTime     *response.DateTime `json:"end_time"`
	DueDate     *response.Date     `json:"due_date"`
	Category    *string            `json:"category"`
	Tags        []string           `json:"tags"`
	Subtasks    []string           `json:"subtasks"`
	TimeRange   aitask.TimeRange   `json:"time_range"`
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	dt := response.DateTime(*t)
	return &dt
}

func toDate(t *time.Time) *response.Date {
	if t == nil {
		return nil
	}
	d := response.Date(*t)
	return &d
}

func newTaskResp(task aitask.ParsedTask) taskResp {
	return taskResp{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		StartTime:   toDateTime(task.StartTime),
		EndTime:     toDateTime(task.EndTime),
		DueDate:     toDate(task.DueDate),
		Category:    task.Category,
		Tags:        task.Tags,
		Subtasks:    task.Subtasks,
		TimeRange:   task.TimeRange,
	}
}

type parseTaskResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newParseTaskResp(output aitask.ParseOutput) parseTaskResp {
	tasks := make([]taskResp, 0, len(output.Tasks))
	for _, task := range output.Tasks {
		tasks = append(tasks, newTaskResp(task))
	}
	return parseTaskResp{Tasks: tasks}
}

type listModelsResp struct {
	Models      []modelrouter.ModelInfo `json:"models"`
	Default     string                  `json:"default"`
	ChatDefault string                  `json:"chat_default"`
}

func (h *handler) newListModelsResp() listModelsResp {
	return listModelsResp{
		Models:      h.catalog.Supported(),
		Default:     h.catalog.DefaultTaskModel(),
		ChatDefault: h.catalog.DefaultChatModel(),
	}
}
