package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/command", mw.RateLimit(), h.Command)
	}
}
