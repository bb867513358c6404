package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/assist"
	"cortex-workspace/pkg/log"
)

// Handler is the public interface for the writing assistant HTTP delivery layer.
type Handler interface {
	PolishText(c *gin.Context)
	AnalyzeNote(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assist.UseCase
}

// New creates a new HTTP handler for the writing assistant domain.
func New(l log.Logger, uc assist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
