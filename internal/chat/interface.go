package chat

import (
	"context"

	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

type UseCase interface {
	// Dispatch classifies one conversational command into a plain message or
	// a structured action. It never fails: model failures come back as an
	// apologetic message reply.
	Dispatch(ctx context.Context, sc model.Scope, input DispatchInput) DispatchOutput
}

// Completer is the slice of the model gateway the dispatcher needs.
type Completer interface {
	Complete(ctx context.Context, req *modelrouter.Request) (*modelrouter.Result, error)
	DefaultChatModel() string
	IsSupported(model string) bool
}
