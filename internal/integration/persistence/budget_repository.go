package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every budget.
func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).Order("start_date ASC").Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}
