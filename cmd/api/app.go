package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"homeinsight-listings/internal/handlers"
	"homeinsight-listings/internal/middleware"
	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/services"
	"homeinsight-listings/internal/transformers"
	"homeinsight-listings/internal/validators"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/config"
	"homeinsight-listings/pkg/database"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/media"
	"homeinsight-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	Config         *config.Config
	Router         *gin.Engine
	MongoClient    *mongo.Client
	Database       database.Database
	RedisClient    *redis.Client
	ListingHandler *handlers.ListingHandler
	ImageHandler   *handlers.ImageHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server

	stopCleanup context.CancelFunc
}

func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	app.initializeDatabase()
	app.initializeCache()
	app.initializeMetrics()
	app.initializeRateLimiter()

	app.initializeDependencies()

	app.initializeRouter()

	return app
}

func (a *App) initializeDatabase() {
	client, db, err := database.InitDB(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	a.MongoClient = client
	a.Database = database.NewMongoDatabase(db)

	if !a.Config.Database.CreateIndexes {
		return
	}
	if err := a.Database.CreateListingIndexes(context.Background(), a.Config.Database.Collection); err != nil {
		logger.GlobalLogger.Errorf("Continuing without index creation: %v", err)
	}
}

func (a *App) initializeCache() {
	client, err := cache.InitRedis(a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	a.RedisClient = client
}

func (a *App) initializeMetrics() {
	metrics.Init()
}

func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(
		middleware.PerMinute(a.Config.RateLimit.RequestsPerMinute),
		a.Config.RateLimit.Burst,
	)
	ctx, cancel := context.WithCancel(context.Background())
	a.stopCleanup = cancel
	go a.RateLimiter.Cleanup(ctx, 10*time.Minute)
}

func (a *App) initializeDependencies() {
	// repositories
	listingRepo := repositories.NewListingRepository(a.Database.GetCollection(a.Config.Database.Collection))
	listingCache := repositories.NewListingCache(cache.NewStore(a.RedisClient))

	// transformers
	addrTrans := transformers.NewAddressTransformer()
	listingTrans := transformers.NewListingTransformer(addrTrans)

	// validators
	listingValidator := validators.NewListingValidator()

	// upstream
	mediaClient := media.NewClient(media.Options{
		BaseURL:  a.Config.Media.BaseURL,
		Token:    a.Config.Media.Token,
		Timeout:  a.Config.Media.Timeout,
		RetryMax: a.Config.Media.RetryMax,
	})
	if a.Config.Media.Token == "" {
		logger.GlobalLogger.Errorf("No media API token configured; photo lookups will fail")
	}

	// services
	limits := services.SearchLimits{Text: a.Config.Search.TextLimit, Browse: a.Config.Search.BrowseLimit}
	searchService := services.NewListingSearchService(listingRepo, listingCache, listingTrans, limits, a.Config.Search.CacheTTL)
	imageService := services.NewImageService(mediaClient, listingCache, a.Config.Media.CacheTTL, a.Config.Media.FallbackImageURL)

	// handlers
	a.ListingHandler = handlers.NewListingHandler(searchService, listingValidator)
	a.ImageHandler = handlers.NewImageHandler(imageService)
}

func (a *App) initializeRouter() {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

func (a *App) cleanup() {
	if a.stopCleanup != nil {
		a.stopCleanup()
	}
	database.CloseDB(a.MongoClient)
	cache.CloseRedis(a.RedisClient)
}
