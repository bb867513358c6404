package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/response"
)

// Command godoc
// @Summary     Dispatch a conversational command
// @Description Classifies the user's message into a plain reply or a structured action. The call always succeeds: model failures come back as an apologetic message reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Message, optional model override, history, and workspace context"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/chat/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output := h.uc.Dispatch(ctx, h.scope(c), req.toInput())

	response.OK(c, h.newCommandResp(output))
}

// scope builds the caller scope from request context values.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetString("user_id")}
}
