package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// DefaultUpcomingDays is the lookahead window used when the caller does not
// pass one.
const DefaultUpcomingDays = 30

// GetUpcomingPlannedInput represents the input for the upcoming planned
// transactions report. AsOf defaults to now when zero.
type GetUpcomingPlannedInput struct {
	Days int
	AsOf time.Time
}

// GetUpcomingPlannedOutput represents the output of the upcoming planned
// transactions report.
type GetUpcomingPlannedOutput struct {
	Upcoming analytics.UpcomingPlanned `json:"upcoming"`
}

// GetUpcomingPlannedUseCase handles the upcoming planned transactions
// report.
type GetUpcomingPlannedUseCase struct {
	repos Repositories
}

// NewGetUpcomingPlannedUseCase creates a new GetUpcomingPlannedUseCase
// instance.
func NewGetUpcomingPlannedUseCase(repos Repositories) *GetUpcomingPlannedUseCase {
	return &GetUpcomingPlannedUseCase{repos: repos}
}

// Execute lists the pending planned transactions due within the next Days
// days, with expected income/expense totals.
func (uc *GetUpcomingPlannedUseCase) Execute(
	ctx context.Context,
	input GetUpcomingPlannedInput,
) (*GetUpcomingPlannedOutput, error) {
	if input.Days <= 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDays,
			"days must be a positive integer",
			domainerror.ErrInvalidDays,
		)
	}

	asOf := resolveAsOf(input.AsOf)
	windowEnd := asOf.AddDate(0, 0, input.Days)

	planned, err := uc.repos.Planned.FindPendingInWindow(ctx, asOf, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned transactions: %w", err)
	}

	upcoming := analytics.CalculateUpcomingPlanned(planned, input.Days, asOf)

	return &GetUpcomingPlannedOutput{Upcoming: upcoming}, nil
}
