package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
	"github.com/pocketledger/backend/internal/domain/entity"
)

// GetInsightsInput represents the input for the insights report.
type GetInsightsInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetInsightsOutput represents the output of the insights report.
type GetInsightsOutput struct {
	Insights []string `json:"insights"`
}

// GetInsightsUseCase handles the natural-language insights report.
type GetInsightsUseCase struct {
	repos Repositories
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(repos Repositories) *GetInsightsUseCase {
	return &GetInsightsUseCase{repos: repos}
}

// Execute derives the intermediate statistics for the range and runs the
// insight rules over them.
func (uc *GetInsightsUseCase) Execute(
	ctx context.Context,
	input GetInsightsInput,
) (*GetInsightsOutput, error) {
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

	insights := analytics.GenerateInsights(analytics.InsightInput{
		Velocity:         analytics.CalculateSpendingVelocity(snap.transactions, input.StartDate, input.EndDate),
		CategorySpending: analytics.CalculateCategorySpending(inRange, snap.categories, entity.TransactionTypeExpense),
		AccountStats:     analytics.CalculateAccountStatistics(inRange, snap.accounts),
		Summary:          analytics.CalculateSummary(inRange),
		Transactions:     inRange,
	})

	return &GetInsightsOutput{Insights: insights}, nil
}
