package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
)

// DefaultTopCategories is the number of category series returned when the
// caller does not ask for a specific count.
const DefaultTopCategories = 5

// GetCategoryTrendsInput represents the input for the category trends
// report.
type GetCategoryTrendsInput struct {
	StartDate     time.Time
	EndDate       time.Time
	Granularity   analytics.Granularity
	TopCategories int
}

// GetCategoryTrendsOutput represents the output of the category trends
// report.
type GetCategoryTrendsOutput struct {
	StartDate   time.Time                     `json:"start_date"`
	EndDate     time.Time                     `json:"end_date"`
	Granularity analytics.Granularity         `json:"granularity"`
	Series      []analytics.CategoryTrendSeries `json:"series"`
}

// GetCategoryTrendsUseCase handles the per-category spend series report.
type GetCategoryTrendsUseCase struct {
	repos Repositories
}

// NewGetCategoryTrendsUseCase creates a new GetCategoryTrendsUseCase
// instance.
func NewGetCategoryTrendsUseCase(repos Repositories) *GetCategoryTrendsUseCase {
	return &GetCategoryTrendsUseCase{repos: repos}
}

// Execute builds per-period expense series for the top N categories over the
// range.
func (uc *GetCategoryTrendsUseCase) Execute(
	ctx context.Context,
	input GetCategoryTrendsInput,
) (*GetCategoryTrendsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	if input.TopCategories <= 0 {
		input.TopCategories = DefaultTopCategories
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	series := analytics.CalculateCategoryTrends(
		snap.transactions, snap.categories,
		input.StartDate, input.EndDate,
		input.Granularity, input.TopCategories,
	)

	return &GetCategoryTrendsOutput{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Granularity: input.Granularity,
		Series:      series,
	}, nil
}

func (uc *GetCategoryTrendsUseCase) validateInput(input GetCategoryTrendsInput) error {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return err
	}
	return validateGranularity(input.Granularity)
}
