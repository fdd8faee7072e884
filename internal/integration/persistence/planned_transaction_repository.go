package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// plannedTransactionRepository implements the
// adapter.PlannedTransactionRepository interface.
type plannedTransactionRepository struct {
	db *gorm.DB
}

// NewPlannedTransactionRepository creates a new planned transaction
// repository instance.
func NewPlannedTransactionRepository(db *gorm.DB) adapter.PlannedTransactionRepository {
	return &plannedTransactionRepository{
		db: db,
	}
}

// Create creates a new planned transaction in the database.
func (r *plannedTransactionRepository) Create(ctx context.Context, planned *entity.PlannedTransaction) error {
	plannedModel := model.PlannedTransactionFromEntity(planned)
	result := r.db.WithContext(ctx).Create(plannedModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindPendingInWindow retrieves pending planned transactions whose next
// occurrence falls within [from, to].
func (r *plannedTransactionRepository) FindPendingInWindow(ctx context.Context, from, to time.Time) ([]*entity.PlannedTransaction, error) {
	var plannedModels []model.PlannedTransactionModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(entity.PlannedStatusPending)).
		Where("next_occurrence_date >= ? AND next_occurrence_date <= ?", from, to).
		Order("next_occurrence_date ASC").
		Find(&plannedModels)
	if result.Error != nil {
		return nil, result.Error
	}

	planned := make([]*entity.PlannedTransaction, len(plannedModels))
	for i, pm := range plannedModels {
		planned[i] = pm.ToEntity()
	}
	return planned, nil
}
