package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindAll retrieves every budget.
	FindAll(ctx context.Context) ([]*entity.Budget, error)
}
