package assist

import (
	"context"

	"cortex-workspace/internal/model"
	"cortex-workspace/pkg/modelrouter"
)

type UseCase interface {
	// PolishText rewrites text in the requested style. Unlike task parsing
	// there is no degraded mode that preserves intent, so failures surface
	// as errors.
	PolishText(ctx context.Context, sc model.Scope, input PolishInput) (PolishOutput, error)

	// AnalyzeNote suggests a category, folder, and tags for a note. It never
	// fails: unusable model output yields the default filing.
	AnalyzeNote(ctx context.Context, sc model.Scope, input AnalyzeNoteInput) NoteFiling
}

// Completer is the slice of the model gateway the assistant needs.
type Completer interface {
	Complete(ctx context.Context, req *modelrouter.Request) (*modelrouter.Result, error)
	DefaultChatModel() string
}
