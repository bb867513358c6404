package usecase

import (
	"time"

	"cortex-workspace/internal/aitask"
	pkgLog "cortex-workspace/pkg/log"
	"cortex-workspace/pkg/ruleparse"
)

type implUseCase struct {
	l        pkgLog.Logger
	gateway  aitask.Completer
	rules    *ruleparse.Parser
	location *time.Location
}

// New creates a new task interpretation UseCase instance.
func New(
	l pkgLog.Logger,
	gateway aitask.Completer,
	rules *ruleparse.Parser,
	location *time.Location,
) *implUseCase {
	return &implUseCase{
		l:        l,
		gateway:  gateway,
		rules:    rules,
		location: location,
	}
}
