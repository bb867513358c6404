package http

import (
	"cortex-workspace/internal/chat"
)

type commandResp struct {
	ResponseType string              `json:"response_type"`
	Content      string              `json:"content"`
	Action       *chat.ActionDetails `json:"action_details,omitempty"`
}

func (h *handler) newCommandResp(output chat.DispatchOutput) commandResp {
	return commandResp{
		ResponseType: string(output.ResponseType),
		Content:      output.Content,
		Action:       output.Action,
	}
}
