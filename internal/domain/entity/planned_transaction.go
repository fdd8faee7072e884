// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlannedStatus represents the lifecycle state of a planned transaction.
type PlannedStatus string

const (
	PlannedStatusPending   PlannedStatus = "pending"
	PlannedStatusCompleted PlannedStatus = "completed"
	PlannedStatusCancelled PlannedStatus = "cancelled"
)

// PlannedTransaction represents a scheduled future transaction, such as a
// recurring bill.
type PlannedTransaction struct {
	ID                 uuid.UUID
	AccountID          uuid.UUID
	CategoryID         *uuid.UUID
	Type               TransactionType
	Amount             decimal.Decimal
	Description        string
	ScheduledDate      time.Time
	NextOccurrenceDate time.Time
	Status             PlannedStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewPlannedTransaction creates a new PlannedTransaction entity.
func NewPlannedTransaction(
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	description string,
	scheduledDate time.Time,
) *PlannedTransaction {
	now := time.Now().UTC()

	return &PlannedTransaction{
		ID:                 uuid.New(),
		AccountID:          accountID,
		CategoryID:         categoryID,
		Type:               transactionType,
		Amount:             amount,
		Description:        description,
		ScheduledDate:      scheduledDate,
		NextOccurrenceDate: scheduledDate,
		Status:             PlannedStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
