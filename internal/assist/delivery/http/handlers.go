package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/response"
)

// PolishText godoc
// @Summary     Rewrite text in a requested style
// @Description Polishes the given text in one of five styles: professional, casual, lively, concise, detailed. Unknown styles map to professional.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body polishTextReq true "Text and style"
// @Success     200 {object} polishTextResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai/polish-text [POST]
func (h *handler) PolishText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPolishTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.PolishText(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.PolishText: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newPolishTextResp(output))
}

// AnalyzeNote godoc
// @Summary     Suggest filing for a note
// @Description Suggests a category, folder, and tags for a note. Always succeeds: unusable model output yields a default filing.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body analyzeNoteReq true "Note title and content"
// @Success     200 {object} analyzeNoteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/ai/analyze-note [POST]
func (h *handler) AnalyzeNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	filing := h.uc.AnalyzeNote(ctx, h.scope(c), req.toInput())

	response.OK(c, h.newAnalyzeNoteResp(filing))
}

// scope builds the caller scope from request context values.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetString("user_id")}
}
