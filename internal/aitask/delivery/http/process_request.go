package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/aitask"
)

type parseContextReq struct {
	SplitTasks  bool     `json:"split_tasks"`
	Projects    []string `json:"projects"`
	Categories  []string `json:"categories"`
	CurrentTime string   `json:"current_time"`
}

type parseTaskReq struct {
	Text    string           `json:"text" binding:"required"`
	Context *parseContextReq `json:"context"`
}

func (req parseTaskReq) toInput() aitask.ParseInput {
	input := aitask.ParseInput{Text: req.Text}
	if req.Context == nil {
		return input
	}

	pc := &aitask.ParseContext{
		SplitTasks: req.Context.SplitTasks,
		Projects:   req.Context.Projects,
		Categories: req.Context.Categories,
	}
	// An unparseable context time is ignored rather than rejected; the engine
	// falls back to the server clock.
	if req.Context.CurrentTime != "" {
		if t, err := time.Parse(time.RFC3339, req.Context.CurrentTime); err == nil {
			pc.CurrentTime = t
		}
	}
	input.Context = pc
	return input
}

// processParseTaskReq binds and validates the parse-task request body.
func (h *handler) processParseTaskReq(c *gin.Context) (parseTaskReq, error) {
	var req parseTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
