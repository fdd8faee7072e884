// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the recurrence period of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit for a category, or overall when
// CategoryID is nil.
type Budget struct {
	ID         uuid.UUID
	CategoryID *uuid.UUID // nil means an overall budget
	Amount     decimal.Decimal
	Period     BudgetPeriod
	StartDate  time.Time
	EndDate    *time.Time
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	categoryID *uuid.UUID,
	amount decimal.Decimal,
	period BudgetPeriod,
	startDate time.Time,
	color string,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     amount,
		Period:     period,
		StartDate:  startDate,
		Color:      color,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
