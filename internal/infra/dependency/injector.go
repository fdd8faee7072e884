// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/config"
	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/application/usecase/report"
	"github.com/pocketledger/backend/internal/infra/server/router"
	"github.com/pocketledger/backend/internal/integration/cache"
	"github.com/pocketledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocketledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocketledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The redis client may be nil, in which case report caching is disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	repos := report.Repositories{
		Transactions: persistence.NewTransactionRepository(db),
		Accounts:     persistence.NewAccountRepository(db),
		Categories:   persistence.NewCategoryRepository(db),
		Labels:       persistence.NewLabelRepository(db),
		Budgets:      persistence.NewBudgetRepository(db),
		Planned:      persistence.NewPlannedTransactionRepository(db),
	}

	// Create report use cases
	getSpendingBreakdownUseCase := report.NewGetSpendingBreakdownUseCase(repos)
	getTrendsUseCase := report.NewGetTrendsUseCase(repos)
	getVelocityUseCase := report.NewGetVelocityUseCase(repos)
	getPerformanceUseCase := report.NewGetPerformanceUseCase(repos)
	getComparisonUseCase := report.NewGetComparisonUseCase(repos)
	getBalanceTrendUseCase := report.NewGetBalanceTrendUseCase(repos)
	getCategoryTrendsUseCase := report.NewGetCategoryTrendsUseCase(repos)
	getForecastUseCase := report.NewGetForecastUseCase(repos)
	getInsightsUseCase := report.NewGetInsightsUseCase(repos)
	getBudgetProgressUseCase := report.NewGetBudgetProgressUseCase(repos)
	getUpcomingPlannedUseCase := report.NewGetUpcomingPlannedUseCase(repos)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	reportController := controller.NewReportController(
		getSpendingBreakdownUseCase,
		getTrendsUseCase,
		getVelocityUseCase,
		getPerformanceUseCase,
		getComparisonUseCase,
		getBalanceTrendUseCase,
		getCategoryTrendsUseCase,
		getForecastUseCase,
		getInsightsUseCase,
	)

	budgetController := controller.NewBudgetController(getBudgetProgressUseCase)
	plannedController := controller.NewPlannedController(getUpcomingPlannedUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowDuration)
	}

	// Create report cache
	var reportCache adapter.ReportCache
	if redisClient != nil && cfg.Cache.Enabled {
		reportCache = cache.NewReportCache(redisClient)
	}

	r := router.NewRouter(
		healthController,
		reportController,
		budgetController,
		plannedController,
		rateLimiter,
		reportCache,
		cfg.Cache.TTL,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
