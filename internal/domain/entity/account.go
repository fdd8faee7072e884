// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCash     AccountType = "cash"
	AccountTypeCard     AccountType = "card"
)

// Account represents a money account. Its balance is the anchor for
// balance-trend reconstruction.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal // Signed
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(name string, accountType AccountType, balance decimal.Decimal, color string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		Name:      name,
		Type:      accountType,
		Balance:   balance,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Label is a free-form tag attached to transactions (many-to-many).
type Label struct {
	ID        uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLabel creates a new Label entity.
func NewLabel(name, color string) *Label {
	now := time.Now().UTC()

	return &Label{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
