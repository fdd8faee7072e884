package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/analytics"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// GetSpendingBreakdownInput represents the input for the spending breakdown
// report. Type selects the aggregated side (expense by default); the
// remaining fields narrow the ledger before aggregation.
type GetSpendingBreakdownInput struct {
	StartDate   time.Time
	EndDate     time.Time
	Type        entity.TransactionType
	AccountIDs  []uuid.UUID
	CategoryIDs []uuid.UUID
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	SearchQuery string
}

// GetSpendingBreakdownOutput represents the output of the spending breakdown
// report.
type GetSpendingBreakdownOutput struct {
	Categories []analytics.CategorySpending `json:"categories"`
	Accounts   []analytics.AccountSpending  `json:"accounts"`
	Labels     []analytics.LabelSpending    `json:"labels"`
	Summary    analytics.Summary            `json:"summary"`
}

// GetSpendingBreakdownUseCase handles the per-dimension spending breakdown.
type GetSpendingBreakdownUseCase struct {
	repos Repositories
}

// NewGetSpendingBreakdownUseCase creates a new GetSpendingBreakdownUseCase
// instance.
func NewGetSpendingBreakdownUseCase(repos Repositories) *GetSpendingBreakdownUseCase {
	return &GetSpendingBreakdownUseCase{repos: repos}
}

// Execute filters the ledger with the given criteria and aggregates the
// selected transaction type by category (split-aware), account and label.
// The summary always covers both sides of the filtered range.
func (uc *GetSpendingBreakdownUseCase) Execute(
	ctx context.Context,
	input GetSpendingBreakdownInput,
) (*GetSpendingBreakdownOutput, error) {
	if err := uc.validateInput(&input); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, uc.repos)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterTransactions(snap.transactions, analytics.FilterCriteria{
		AccountIDs:  input.AccountIDs,
		CategoryIDs: input.CategoryIDs,
		StartDate:   &input.StartDate,
		EndDate:     &input.EndDate,
		MinAmount:   input.MinAmount,
		MaxAmount:   input.MaxAmount,
		SearchQuery: input.SearchQuery,
	})

	return &GetSpendingBreakdownOutput{
		Categories: analytics.CalculateCategorySpending(filtered, snap.categories, input.Type),
		Accounts:   analytics.CalculateAccountSpending(filtered, snap.accounts, input.Type),
		Labels:     analytics.CalculateLabelSpending(filtered, snap.labels, input.Type),
		Summary:    analytics.CalculateSummary(filtered),
	}, nil
}

func (uc *GetSpendingBreakdownUseCase) validateInput(input *GetSpendingBreakdownInput) error {
	if err := validateDateRange(input.StartDate, input.EndDate); err != nil {
		return err
	}
	if input.Type == "" {
		input.Type = entity.TransactionTypeExpense
	}
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be: income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}
	return nil
}
