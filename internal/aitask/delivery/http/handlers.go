package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/response"
)

// ParseTask godoc
// @Summary     Parse natural-language text into tasks
// @Description Extracts one or more structured tasks from free-form text. Falls back to deterministic rule-based parsing when no model is reachable, so the call always succeeds with at least one task.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseTaskReq true "Text and optional parse context"
// @Success     200 {object} parseTaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/ai/parse-task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseTaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Parse(ctx, h.scope(c), req.toInput())

	response.OK(c, h.newParseTaskResp(output))
}

// ListModels godoc
// @Summary     List supported AI models
// @Description Returns the static model registry with the configured task and chat defaults.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Success     200 {object} listModelsResp
// @Router      /api/ai/models [GET]
func (h *handler) ListModels(c *gin.Context) {
	response.OK(c, h.newListModelsResp())
}

// scope builds the caller scope from request context values.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetString("user_id")}
}
