package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/aitask"
	"cortex-workspace/pkg/log"
	"cortex-workspace/pkg/modelrouter"
)

// Handler is the public interface for the AI task HTTP delivery layer.
type Handler interface {
	ParseTask(c *gin.Context)
	ListModels(c *gin.Context)
}

// ModelCatalog is the gateway slice the models endpoint needs.
type ModelCatalog interface {
	Supported() []modelrouter.ModelInfo
	DefaultTaskModel() string
	DefaultChatModel() string
}

type handler struct {
	l       log.Logger
	uc      aitask.UseCase
	catalog ModelCatalog
}

// New creates a new HTTP handler for the AI task domain.
func New(l log.Logger, uc aitask.UseCase, catalog ModelCatalog) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		catalog: catalog,
	}
}
