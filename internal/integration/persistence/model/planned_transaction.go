package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// PlannedTransactionModel represents the planned_transactions table in the
// database.
type PlannedTransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	Type               string          `gorm:"type:varchar(10);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description        string          `gorm:"type:varchar(255)"`
	ScheduledDate      time.Time       `gorm:"type:date;not null"`
	NextOccurrenceDate time.Time       `gorm:"type:date;not null;index"`
	Status             string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PlannedTransactionModel.
func (PlannedTransactionModel) TableName() string {
	return "planned_transactions"
}

// ToEntity converts a PlannedTransactionModel to a domain PlannedTransaction
// entity.
func (m *PlannedTransactionModel) ToEntity() *entity.PlannedTransaction {
	return &entity.PlannedTransaction{
		ID:                 m.ID,
		AccountID:          m.AccountID,
		CategoryID:         m.CategoryID,
		Type:               entity.TransactionType(m.Type),
		Amount:             m.Amount,
		Description:        m.Description,
		ScheduledDate:      m.ScheduledDate,
		NextOccurrenceDate: m.NextOccurrenceDate,
		Status:             entity.PlannedStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// PlannedTransactionFromEntity creates a PlannedTransactionModel from a
// domain PlannedTransaction entity.
func PlannedTransactionFromEntity(planned *entity.PlannedTransaction) *PlannedTransactionModel {
	return &PlannedTransactionModel{
		ID:                 planned.ID,
		AccountID:          planned.AccountID,
		CategoryID:         planned.CategoryID,
		Type:               string(planned.Type),
		Amount:             planned.Amount,
		Description:        planned.Description,
		ScheduledDate:      planned.ScheduledDate,
		NextOccurrenceDate: planned.NextOccurrenceDate,
		Status:             string(planned.Status),
		CreatedAt:          planned.CreatedAt,
		UpdatedAt:          planned.UpdatedAt,
	}
}
