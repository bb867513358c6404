package http

import (
	"github.com/gin-gonic/gin"

	"cortex-workspace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/polish-text", mw.RateLimit(), h.PolishText)
		ai.POST("/analyze-note", mw.RateLimit(), h.AnalyzeNote)
	}
}
