// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus represents the optional reconciliation status of a transaction.
type TransactionStatus string

const (
	TransactionStatusCleared TransactionStatus = "cleared"
	TransactionStatusPending TransactionStatus = "pending"
)

// Transaction represents a financial transaction in the ledger.
// A transaction is either atomic (CategoryID and Amount are authoritative for
// category attribution) or split (Splits are authoritative); Splits being
// non-empty is what makes it split.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	ToAccountID *uuid.UUID // Set for transfers
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	Type        TransactionType
	Amount      decimal.Decimal // Always non-negative; Type carries the sign
	Date        time.Time
	Description string
	Notes       string
	Splits      []Split
	LabelIDs    []uuid.UUID
	Status      TransactionStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Split is a sub-allocation of one transaction's amount to a category.
// Splits are owned exclusively by their parent transaction.
type Split struct {
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// IsSplit reports whether category attribution comes from Splits instead of
// the transaction's own CategoryID/Amount.
func (t *Transaction) IsSplit() bool {
	return len(t.Splits) > 0
}

// CategoryPortion is one unit of category attribution.
type CategoryPortion struct {
	CategoryID *uuid.UUID
	Amount     decimal.Decimal
}

// CategoryPortions returns the category attribution of the transaction: one
// portion per split when the transaction is split, otherwise a single portion
// carrying the transaction's own category and amount. The sum of split amounts
// is expected to equal the transaction amount but is never enforced here.
func (t *Transaction) CategoryPortions() []CategoryPortion {
	if t.IsSplit() {
		portions := make([]CategoryPortion, len(t.Splits))
		for i, s := range t.Splits {
			portions[i] = CategoryPortion{CategoryID: s.CategoryID, Amount: s.Amount}
		}
		return portions
	}
	return []CategoryPortion{{CategoryID: t.CategoryID, Amount: t.Amount}}
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	date time.Time,
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	categoryID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
