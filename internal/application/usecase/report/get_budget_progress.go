package report

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
)

// GetBudgetProgressInput represents the input for the budget progress
// report. AsOf defaults to now when zero.
type GetBudgetProgressInput struct {
	AsOf time.Time
}

// GetBudgetProgressOutput represents the output of the budget progress
// report.
type GetBudgetProgressOutput struct {
	Budgets []analytics.BudgetProgress `json:"budgets"`
}

// GetBudgetProgressUseCase handles the budget consumption report.
type GetBudgetProgressUseCase struct {
	repos Repositories
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase
// instance.
func NewGetBudgetProgressUseCase(repos Repositories) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{repos: repos}
}

// Execute computes spend against every budget active in its current period.
func (uc *GetBudgetProgressUseCase) Execute(
	ctx context.Context,
	input GetBudgetProgressInput,
) (*GetBudgetProgressOutput, error) {
	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.repos.Budgets.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	progress := analytics.CalculateBudgetProgress(
		budgets, snap.transactions, snap.categories, resolveAsOf(input.AsOf),
	)

	return &GetBudgetProgressOutput{Budgets: progress}, nil
}
