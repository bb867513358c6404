package usecase

import (
	"cortex-workspace/internal/chat"
	pkgLog "cortex-workspace/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	gateway chat.Completer
}

// New creates a new conversational dispatcher UseCase instance.
func New(l pkgLog.Logger, gateway chat.Completer) *implUseCase {
	return &implUseCase{
		l:       l,
		gateway: gateway,
	}
}
