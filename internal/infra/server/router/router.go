// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	reportController  *controller.ReportController
	budgetController  *controller.BudgetController
	plannedController *controller.PlannedController
	rateLimiter       *middleware.RateLimiter
	reportCache       adapter.ReportCache
	cacheTTL          time.Duration
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	reportController *controller.ReportController,
	budgetController *controller.BudgetController,
	plannedController *controller.PlannedController,
	rateLimiter *middleware.RateLimiter,
	reportCache adapter.ReportCache,
	cacheTTL time.Duration,
) *Router {
	return &Router{
		healthController:  healthController,
		reportController:  reportController,
		budgetController:  budgetController,
		plannedController: plannedController,
		rateLimiter:       rateLimiter,
		reportCache:       reportCache,
		cacheTTL:          cacheTTL,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	{
		// Report routes
		if r.reportController != nil {
			reports := v1.Group("/reports")
			if r.reportCache != nil {
				reports.Use(middleware.ReportCacheMiddleware(r.reportCache, r.cacheTTL))
			}
			{
				reports.GET("/spending", r.reportController.GetSpendingBreakdown)
				reports.GET("/trends", r.reportController.GetTrends)
				reports.GET("/velocity", r.reportController.GetVelocity)
				reports.GET("/performance", r.reportController.GetPerformance)
				reports.GET("/comparison", r.reportController.GetComparison)
				reports.GET("/balance-trend", r.reportController.GetBalanceTrend)
				reports.GET("/category-trends", r.reportController.GetCategoryTrends)
				reports.GET("/forecast", r.reportController.GetForecast)
				reports.GET("/insights", r.reportController.GetInsights)
			}
		}

		// Budget routes
		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("/progress", r.budgetController.GetProgress)
			}
		}

		// Planned transaction routes
		if r.plannedController != nil {
			planned := v1.Group("/planned")
			{
				planned.GET("/upcoming", r.plannedController.GetUpcoming)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
