package main

import (
	"time"

	"homeinsight-listings/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (a *App) setupMiddleware() {
	a.Router.Use(gin.Recovery())
	a.Router.Use(middleware.RequestID())
	a.Router.Use(setupCORS(a.Config.IsProduction()))
	a.Router.Use(middleware.MetricsMiddleware())
	a.Router.Use(middleware.LoggingMiddleware())
	a.Router.Use(middleware.RateLimitMiddleware(a.RateLimiter))
	a.Router.Use(middleware.SecureHeaders())
	a.Router.Use(middleware.ErrorHandler())
}

// setupCORS allows any origin outside production. The API is read-only, so
// only GET and preflight are accepted.
func setupCORS(production bool) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if production {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
