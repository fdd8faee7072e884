package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// DefaultBalanceTrendDays is the window used when the caller does not pass
// one.
const DefaultBalanceTrendDays = 30

// GetBalanceTrendInput represents the input for the balance trend report.
// AsOf defaults to now when zero.
type GetBalanceTrendInput struct {
	Days int
	AsOf time.Time
}

// GetBalanceTrendOutput represents the output of the balance trend report.
type GetBalanceTrendOutput struct {
	Points []analytics.BalancePoint `json:"points"`
}

// GetBalanceTrendUseCase handles the reconstructed balance history report.
type GetBalanceTrendUseCase struct {
	repos Repositories
}

// NewGetBalanceTrendUseCase creates a new GetBalanceTrendUseCase instance.
func NewGetBalanceTrendUseCase(repos Repositories) *GetBalanceTrendUseCase {
	return &GetBalanceTrendUseCase{repos: repos}
}

// Execute reconstructs the day-by-day total balance for the last Days days,
// anchored at the current sum of account balances.
func (uc *GetBalanceTrendUseCase) Execute(
	ctx context.Context,
	input GetBalanceTrendInput,
) (*GetBalanceTrendOutput, error) {
	if input.Days <= 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDays,
			"days must be a positive integer",
			domainerror.ErrInvalidDays,
		)
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	points := analytics.CalculateBalanceTrend(
		snap.transactions, snap.accounts, input.Days, resolveAsOf(input.AsOf),
	)

	return &GetBalanceTrendOutput{Points: points}, nil
}
