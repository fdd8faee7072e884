package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// DefaultForecastMonths is the forecast horizon used when the caller does
// not pass one.
const DefaultForecastMonths = 3

// GetForecastInput represents the input for the spending forecast report.
// AsOf defaults to now when zero.
type GetForecastInput struct {
	Months int
	AsOf   time.Time
}

// GetForecastOutput represents the output of the spending forecast report.
type GetForecastOutput struct {
	Prediction analytics.SpendingPrediction `json:"prediction"`
}

// GetForecastUseCase handles the monthly spending forecast report.
type GetForecastUseCase struct {
	repos Repositories
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(repos Repositories) *GetForecastUseCase {
	return &GetForecastUseCase{repos: repos}
}

// Execute predicts income and expense for the next Months months from the
// completed monthly history. The forecast is empty when history is too thin.
func (uc *GetForecastUseCase) Execute(
	ctx context.Context,
	input GetForecastInput,
) (*GetForecastOutput, error) {
	if input.Months <= 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonths,
			"months must be a positive integer",
			domainerror.ErrInvalidMonths,
		)
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	prediction := analytics.PredictSpending(snap.transactions, input.Months, resolveAsOf(input.AsOf))

	return &GetForecastOutput{Prediction: prediction}, nil
}
