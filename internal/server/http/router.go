// Package http exposes the sync API over gin. The surface is deliberately
// small and unauthenticated: one mirrored profile, one onboarding flag, and
// a destructive delete covering both.
package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/trattoria/internal/logging"
)

// requestLogger reports every request through the project logger.
func requestLogger(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

func NewRouter(h *Handler, log logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	// The browser clients call from any origin, as the Express original did.
	router.Use(cors.Default())

	api := router.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/profile", h.getProfile)
		api.POST("/profile", h.saveProfile)
		api.GET("/onboarding", h.getOnboarding)
		api.POST("/onboarding", h.saveOnboarding)
		api.DELETE("/user", h.deleteUser)
	}

	return router
}
