package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Type      string          `gorm:"type:varchar(20);not null"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Color     string          `gorm:"type:varchar(7)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.AccountType(m.Type),
		Balance:   m.Balance,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		Name:      account.Name,
		Type:      string(account.Type),
		Balance:   account.Balance,
		Color:     account.Color,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
