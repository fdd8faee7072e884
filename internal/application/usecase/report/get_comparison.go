package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
)

// GetComparisonInput represents the input for the year-over-year comparison
// report.
type GetComparisonInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetComparisonOutput represents the output of the year-over-year comparison
// report.
type GetComparisonOutput struct {
	Comparison analytics.YearOverYearComparison `json:"comparison"`
}

// GetComparisonUseCase handles the year-over-year comparison report.
type GetComparisonUseCase struct {
	repos Repositories
}

// NewGetComparisonUseCase creates a new GetComparisonUseCase instance.
func NewGetComparisonUseCase(repos Repositories) *GetComparisonUseCase {
	return &GetComparisonUseCase{repos: repos}
}

// Execute compares [StartDate, EndDate] against the same-length window one
// calendar year earlier.
func (uc *GetComparisonUseCase) Execute(
	ctx context.Context,
	input GetComparisonInput,
) (*GetComparisonOutput, error) {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	return &GetComparisonOutput{
		Comparison: analytics.CompareYearOverYear(snap.transactions, input.StartDate, input.EndDate),
	}, nil
}
