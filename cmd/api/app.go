package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"nychousing-insights/internal/dataset"
	"nychousing-insights/internal/handlers"
	"nychousing-insights/internal/middleware"
	"nychousing-insights/internal/repositories"
	"nychousing-insights/internal/services"
	"nychousing-insights/internal/transformers"
	"nychousing-insights/internal/validators"
	"nychousing-insights/pkg/cache"
	"nychousing-insights/pkg/config"
	"nychousing-insights/pkg/database"
	"nychousing-insights/pkg/logger"
	"nychousing-insights/pkg/metrics"
)

// App represents the application structure
type App struct {
	Config         *config.Config
	Router         *gin.Engine
	ListingHandler *handlers.ListingHandler
	InsightHandler *handlers.InsightHandler
	MetaHandler    *handlers.MetaHandler
	AuthHandler    *handlers.AuthHandler
	RateLimiter    *middleware.RateLimiter
	Server         *http.Server

	listingRepo  repositories.ListingRepository
	insightCache repositories.InsightCache
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	app := &App{Config: cfg}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeStorage()
	app.initializeCache()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the listing store: connect to MongoDB, or load the dataset CSV
// into memory, depending on the configured storage driver
func (a *App) initializeStorage() {
	switch a.Config.Storage.Driver {
	case "mongo":
		if err := database.InitDB(a.Config); err != nil {
			logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
			os.Exit(1)
		}
		a.listingRepo = repositories.NewMongoListingRepository()
	default:
		loader := dataset.NewLoader(transformers.NewListingTransformer())
		result, err := loader.Load(a.Config.Dataset.Path)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to load dataset: %v", err)
			os.Exit(1)
		}
		a.listingRepo = repositories.NewMemoryListingRepository(result.Listings)
	}
}

// initialize the Redis cache when enabled
func (a *App) initializeCache() {
	if !a.Config.Redis.Enabled {
		a.insightCache = repositories.NewNoopInsightCache()
		return
	}
	if err := cache.InitRedis(a.Config); err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	a.insightCache = repositories.NewRedisInsightCache(time.Duration(a.Config.Redis.TTLSeconds) * time.Second)
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(rate.Limit(100/60.0), 10)
	go a.RateLimiter.Cleanup()
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	// transformers
	trans := transformers.NewListingTransformer()

	// validators
	insightValidator := validators.NewInsightValidator()

	// services
	insightService := services.NewInsightService(a.listingRepo, a.insightCache, trans, insightValidator)
	listingService := services.NewListingService(a.listingRepo, trans, insightValidator)
	viewerService := services.NewViewerService(a.Config)

	// handlers
	a.ListingHandler = handlers.NewListingHandler(listingService)
	a.InsightHandler = handlers.NewInsightHandler(insightService)
	a.MetaHandler = handlers.NewMetaHandler(insightService, a.Config)
	a.AuthHandler = handlers.NewAuthHandler(viewerService, a.Config)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	gin.SetMode(a.Config.Server.Mode)
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	if a.Config.Storage.Driver == "mongo" {
		database.CloseDB()
	}
	if a.Config.Redis.Enabled {
		cache.CloseRedis()
	}
}
