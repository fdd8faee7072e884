// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ToAccountID *uuid.UUID      `gorm:"type:uuid;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Notes       string          `gorm:"type:text"`
	Status      string          `gorm:"type:varchar(10)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Splits []SplitModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
	Labels []LabelModel `gorm:"many2many:transaction_labels"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// SplitModel represents the transaction_splits table in the database.
type SplitModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for the SplitModel.
func (SplitModel) TableName() string {
	return "transaction_splits"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	splits := make([]entity.Split, len(m.Splits))
	for i, s := range m.Splits {
		splits[i] = entity.Split{
			CategoryID:  s.CategoryID,
			Amount:      s.Amount,
			Description: s.Description,
		}
	}

	labelIDs := make([]uuid.UUID, len(m.Labels))
	for i, l := range m.Labels {
		labelIDs[i] = l.ID
	}

	return &entity.Transaction{
		ID:          m.ID,
		AccountID:   m.AccountID,
		ToAccountID: m.ToAccountID,
		CategoryID:  m.CategoryID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Notes:       m.Notes,
		Splits:      splits,
		LabelIDs:    labelIDs,
		Status:      entity.TransactionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	splits := make([]SplitModel, len(transaction.Splits))
	for i, s := range transaction.Splits {
		splits[i] = SplitModel{
			ID:            uuid.New(),
			TransactionID: transaction.ID,
			CategoryID:    s.CategoryID,
			Amount:        s.Amount,
			Description:   s.Description,
		}
	}

	labels := make([]LabelModel, len(transaction.LabelIDs))
	for i, id := range transaction.LabelIDs {
		labels[i] = LabelModel{ID: id}
	}

	return &TransactionModel{
		ID:          transaction.ID,
		AccountID:   transaction.AccountID,
		ToAccountID: transaction.ToAccountID,
		CategoryID:  transaction.CategoryID,
		Type:        string(transaction.Type),
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Description: transaction.Description,
		Notes:       transaction.Notes,
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
		Splits:      splits,
		Labels:      labels,
	}
}
