package report

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
)

// GetVelocityInput represents the input for the velocity and frequency
// report.
type GetVelocityInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetVelocityOutput represents the output of the velocity and frequency
// report.
type GetVelocityOutput struct {
	Velocity  analytics.SpendingVelocity     `json:"velocity"`
	Frequency analytics.TransactionFrequency `json:"frequency"`
}

// GetVelocityUseCase handles the spending velocity and transaction frequency
// report.
type GetVelocityUseCase struct {
	repos Repositories
}

// NewGetVelocityUseCase creates a new GetVelocityUseCase instance.
func NewGetVelocityUseCase(repos Repositories) *GetVelocityUseCase {
	return &GetVelocityUseCase{repos: repos}
}

// Execute computes the expense rate and the weekday activity pattern over
// [StartDate, EndDate].
func (uc *GetVelocityUseCase) Execute(
	ctx context.Context,
	input GetVelocityInput,
) (*GetVelocityOutput, error) {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	return &GetVelocityOutput{
		Velocity:  analytics.CalculateSpendingVelocity(snap.transactions, input.StartDate, input.EndDate),
		Frequency: analytics.CalculateTransactionFrequency(snap.transactions, input.StartDate, input.EndDate),
	}, nil
}
