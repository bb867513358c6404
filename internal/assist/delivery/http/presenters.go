package http

import (
	"cortex-workspace/internal/assist"
)

type polishTextResp struct {
	Text string `json:"text"`
}

func (h *handler) newPolishTextResp(output assist.PolishOutput) polishTextResp {
	return polishTextResp{Text: output.Text}
}

type analyzeNoteResp struct {
	Category string   `json:"category"`
	Folder   string   `json:"folder"`
	Tags     []string `json:"tags"`
}

func (h *handler) newAnalyzeNoteResp(filing assist.NoteFiling) analyzeNoteResp {
	return analyzeNoteResp{
		Category: filing.Category,
		Folder:   filing.Folder,
		Tags:     filing.Tags,
	}
}
