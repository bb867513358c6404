package aitask

import (
	"context"

	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

type UseCase interface {
	// Parse turns free-form text into structured tasks. It never fails:
	// model or protocol failures degrade to the rule-based parser, so the
	// output always carries at least one task.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) ParseOutput
}

// Completer is the slice of the model gateway the engine needs.
type Completer interface {
	Complete(ctx context.Context, req *modelrouter.Request) (*modelrouter.Result, error)
	DefaultTaskModel() string
}
