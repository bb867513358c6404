package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/assist"
)

type polishTextReq struct {
	Text  string `json:"text" binding:"required"`
	Style string `json:"style"`
}

func (req polishTextReq) toInput() assist.PolishInput {
	return assist.PolishInput{
		Text:  req.Text,
		Style: assist.Style(req.Style),
	}
}

type analyzeNoteReq struct {
	Title      string   `json:"title"`
	Content    string   `json:"content" binding:"required"`
	Categories []string `json:"categories"`
}

func (req analyzeNoteReq) toInput() assist.AnalyzeNoteInput {
	return assist.AnalyzeNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Categories: req.Categories,
	}
}

// processPolishTextReq binds and validates the polish-text request body.
func (h *handler) processPolishTextReq(c *gin.Context) (polishTextReq, error) {
	var req polishTextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAnalyzeNoteReq binds and validates the analyze-note request body.
func (h *handler) processAnalyzeNoteReq(c *gin.Context) (analyzeNoteReq, error) {
	var req analyzeNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
