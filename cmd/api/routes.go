package main

import (
	"context"
	"net/http"
	"time"

	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) setupRoutes() {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := a.Database.Ping(ctx); err != nil {
			logger.GlobalLogger.Errorf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if err := cache.Ping(ctx, a.RedisClient); err != nil {
			logger.GlobalLogger.Errorf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		api.GET("/listings", a.ListingHandler.SearchListings)
		api.GET("/image/:key", a.ImageHandler.RedirectToPhoto)
	}
}
