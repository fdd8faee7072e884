package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
)

// GetTrendsInput represents the input for the income/expense trends report.
type GetTrendsInput struct {
	StartDate   time.Time
	EndDate     time.Time
	Granularity analytics.Granularity
}

// GetTrendsOutput represents the output of the trends report.
type GetTrendsOutput struct {
	StartDate   time.Time             `json:"start_date"`
	EndDate     time.Time             `json:"end_date"`
	Granularity analytics.Granularity `json:"granularity"`
	Periods     []analytics.PeriodStat `json:"periods"`
}

// GetTrendsUseCase handles the bucketized income/expense trend report.
type GetTrendsUseCase struct {
	repos Repositories
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(repos Repositories) *GetTrendsUseCase {
	return &GetTrendsUseCase{repos: repos}
}

// Execute buckets the ledger into contiguous periods of the requested
// granularity. Empty periods are present with zero values.
func (uc *GetTrendsUseCase) Execute(
	ctx context.Context,
	input GetTrendsInput,
) (*GetTrendsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	periods := analytics.BucketizeTransactions(
		snap.transactions, input.StartDate, input.EndDate, input.Granularity,
	)

	return &GetTrendsOutput{
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Granularity: input.Granularity,
		Periods:     periods,
	}, nil
}

func (uc *GetTrendsUseCase) validateInput(input GetTrendsInput) error {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return err
	}
	return validateGranularity(input.Granularity)
}
