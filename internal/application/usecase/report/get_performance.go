package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
)

// GetPerformanceInput represents the input for the performance report.
type GetPerformanceInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetPerformanceOutput represents the output of the performance report.
type GetPerformanceOutput struct {
	Categories []analytics.CategoryPerformance `json:"categories"`
	Accounts   []analytics.AccountStatistics   `json:"accounts"`
}

// GetPerformanceUseCase handles the per-category and per-account performance
// report.
type GetPerformanceUseCase struct {
	repos Repositories
}

// NewGetPerformanceUseCase creates a new GetPerformanceUseCase instance.
func NewGetPerformanceUseCase(repos Repositories) *GetPerformanceUseCase {
	return &GetPerformanceUseCase{repos: repos}
}

// Execute computes category performance over the range and account
// statistics over the transactions within it.
func (uc *GetPerformanceUseCase) Execute(
	ctx context.Context,
	input GetPerformanceInput,
) (*GetPerformanceOutput, error) {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	inRange := analytics.FilterTransactions(snap.transactions, analytics.FilterCriteria{
		StartDate: &input.StartDate,
		EndDate:   &input.EndDate,
	})

	return &GetPerformanceOutput{
		Categories: analytics.CalculateCategoryPerformance(
			snap.transactions, snap.categories, input.StartDate, input.EndDate,
		),
		Accounts: analytics.CalculateAccountStatistics(inRange, snap.accounts),
	}, nil
}
