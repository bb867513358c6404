package usecase

import (
	"context"
	"encoding/json"

	"cortex-workspace/internal/chat"
	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

// modelReply is the shape the prompt asks the model to produce. Content being
// absent is tolerated: the raw reply text stands in for it.
type modelReply struct {
	ResponseType string              `json:"response_type"`
	Content      string              `json:"content"`
	Action       *chat.ActionDetails `json:"action_details"`
}

// Dispatch classifies one conversational command. The reply is always usable:
// a model failure or an unrecognized reply shape degrades to a plain message,
// never to an error.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, input chat.DispatchInput) chat.DispatchOutput {
	req := &modelrouter.Request{
		Model:    uc.resolveModel(ctx, input.Model),
		Messages: buildMessages(input),
	}

	result, err := uc.gateway.Complete(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "chat dispatch degraded to error reply: user_id=%s error=%v", sc.UserID, err)
		return chat.DispatchOutput{
			ResponseType: chat.ResponseMessage,
			Content:      chat.ErrorReplyPrefix + err.Error(),
		}
	}

	return interpretReply(result.Content)
}

// resolveModel falls back to the configured chat default when the caller's
// override is empty or unknown.
func (uc *implUseCase) resolveModel(ctx context.Context, override string) string {
	if override == "" {
		return uc.gateway.DefaultChatModel()
	}
	if !uc.gateway.IsSupported(override) {
		uc.l.Warnf(ctx, "unknown chat model %q, using default", override)
		return uc.gateway.DefaultChatModel()
	}
	return override
}

// buildMessages assembles system prompt, capped history, and the current turn.
func buildMessages(input chat.DispatchInput) []modelrouter.Message {
	history := input.History
	if len(history) > chat.MaxHistoryTurns {
		history = history[len(history)-chat.MaxHistoryTurns:]
	}

	messages := make([]modelrouter.Message, 0, len(history)+2)
	messages = append(messages, modelrouter.Message{Role: "system", Content: buildChatPrompt(input)})
	for _, turn := range history {
		messages = append(messages, modelrouter.Message{Role: string(turn.Role), Content: turn.Content})
	}
	messages = append(messages, modelrouter.Message{Role: "user", Content: input.Text})

	return messages
}

// interpretReply maps the raw model text onto the message/action union.
// Non-JSON replies are ordinary conversation; an action reply without a typed
// action is downgraded to a message rather than handed to the caller
// half-formed.
func interpretReply(raw string) chat.DispatchOutput {
	var reply modelReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return chat.DispatchOutput{ResponseType: chat.ResponseMessage, Content: raw}
	}

	content := reply.Content
	if content == "" {
		content = raw
	}

	if reply.ResponseType == string(chat.ResponseAction) {
		if reply.Action == nil || reply.Action.Type == "" {
			return chat.DispatchOutput{ResponseType: chat.ResponseMessage, Content: content}
		}
		return chat.DispatchOutput{
			ResponseType: chat.ResponseAction,
			Content:      content,
			Action:       reply.Action,
		}
	}

	return chat.DispatchOutput{ResponseType: chat.ResponseMessage, Content: content}
}
