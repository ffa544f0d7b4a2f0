package main

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "nychousing-insights/docs"
	"nychousing-insights/internal/middleware"

	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupAPIRoutes()
}

// setupStaticRoutes configures the dashboard, documentation and operational
// endpoints
func (a *App) setupStaticRoutes() {
	// Serve the dashboard
	staticDir := a.Config.Dataset.StaticDir
	a.Router.StaticFile("/", filepath.Join(staticDir, "index.html"))
	a.Router.Static("/static", staticDir)

	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Serve swagger.json
	a.Router.StaticFile("/swagger.json", "./docs/swagger.json")

	// Expose pprof profiling endpoints (disabled in release mode)
	if a.Config.Server.Mode != "release" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	a.Router.GET("/health", a.MetaHandler.HealthCheck)
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		// Public routes
		api.POST("/login", a.AuthHandler.Login)

		// Viewer routes, token-checked only when authentication is enabled
		viewer := api.Group("")
		viewer.Use(middleware.AuthMiddleware(a.Config))
		{
			viewer.GET("/filters", a.MetaHandler.GetFilters)
			viewer.GET("/summary", a.MetaHandler.GetSummary)
			viewer.GET("/listings", a.ListingHandler.GetListings)
			viewer.GET("/listings/:id", a.ListingHandler.GetListingByID)

			insights := viewer.Group("/insights")
			{
				insights.GET("/price-distribution", a.InsightHandler.GetPriceDistribution)
				insights.GET("/luxury", a.InsightHandler.GetLuxury)
				insights.GET("/heatmap", a.InsightHandler.GetHeatmap)
				insights.GET("/scatter", a.InsightHandler.GetScatter)
			}
		}
	}
}
