package usecase

import (
	"cortex-workspace/internal/assist"
	pkgLog "cortex-workspace/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	gateway assist.Completer
}

// New creates a new writing assistant UseCase instance.
func New(l pkgLog.Logger, gateway assist.Completer) *implUseCase {
	return &implUseCase{
		l:       l,
		gateway: gateway,
	}
}
