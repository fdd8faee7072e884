// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every transaction with splits and labels loaded.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Preload("Labels").
		Order("date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// FindByDateRange retrieves transactions within [startDate, endDate].
func (r *transactionRepository) FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Preload("Labels").
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

// FindByAccount retrieves transactions on the given account, including
// transfers into it.
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Splits").
		Preload("Labels").
		Where("account_id = ? OR to_account_id = ?", accountID, accountID).
		Order("date ASC, created_at ASC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntities(transactionModels), nil
}

func toEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions
}
