package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/chat"
)

type turnReq struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content"`
}

type overviewReq struct {
	NotesCount int      `json:"notes_count"`
	TasksCount int      `json:"tasks_count"`
	Categories []string `json:"categories"`
}

type viewingReq struct {
	Type     string `json:"type" binding:"required"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
}

type commandReq struct {
	Text     string       `json:"text" binding:"required"`
	Model    string       `json:"model"`
	History  []turnReq    `json:"history"`
	Overview *overviewReq `json:"overview"`
	Viewing  *viewingReq  `json:"viewing"`
}

func (req commandReq) toInput() chat.DispatchInput {
	input := chat.DispatchInput{
		Text:  req.Text,
		Model: req.Model,
	}

	for _, t := range req.History {
		role := chat.Role(t.Role)
		// Historic clients label assistant turns "ai".
		if t.Role == "ai" {
			role = chat.RoleAssistant
		}
		input.History = append(input.History, chat.Turn{Role: role, Content: t.Content})
	}

	if req.Overview != nil {
		input.Overview = &chat.DataOverview{
			NotesCount: req.Overview.NotesCount,
			TasksCount: req.Overview.TasksCount,
			Categories: req.Overview.Categories,
		}
	}

	if req.Viewing != nil {
		input.Viewing = &chat.ViewingContext{
			Kind:     chat.ViewingKind(req.Viewing.Type),
			Title:    req.Viewing.Title,
			Content:  req.Viewing.Content,
			Status:   req.Viewing.Status,
			Priority: req.Viewing.Priority,
		}
	}

	return input
}

// processCommandReq binds and validates the chat command request body.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
