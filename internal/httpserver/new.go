package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	aitaskDelivery "cortex-workspace/internal/aitask/delivery/http"
	assistDelivery "cortex-workspace/internal/assist/delivery/http"
	chatDelivery "cortex-workspace/internal/chat/delivery/http"
	"cortex-workspace/internal/middleware"
	"cortex-workspace/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware middleware.Middleware

	aitaskHandler aitaskDelivery.Handler
	chatHandler   chatDelivery.Handler
	assistHandler assistDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	AITaskHandler aitaskDelivery.Handler
	ChatHandler   chatDelivery.Handler
	AssistHandler assistDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.New(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		middleware:    cfg.Middleware,
		aitaskHandler: cfg.AITaskHandler,
		chatHandler:   cfg.ChatHandler,
		assistHandler: cfg.AssistHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Run maps all handlers and serves until the listener fails or the process
// is signalled.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
