package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period     string          `gorm:"type:varchar(10);not null"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	EndDate    *time.Time      `gorm:"type:date"`
	Color      string          `gorm:"type:varchar(7)"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Period:     entity.BudgetPeriod(m.Period),
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Color:      m.Color,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Period:     string(budget.Period),
		StartDate:  budget.StartDate,
		EndDate:    budget.EndDate,
		Color:      budget.Color,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
