package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every account.
func (r *accountRepository) FindAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}
