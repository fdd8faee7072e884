package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// Test fixtures shared across the analytics test files.

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}

func expense(accountID uuid.UUID, categoryID *uuid.UUID, amount string, day time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       entity.TransactionTypeExpense,
		Amount:     dec(amount),
		Date:       day,
	}
}

func income(accountID uuid.UUID, categoryID *uuid.UUID, amount string, day time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		AccountID:  accountID,
		CategoryID: categoryID,
		Type:       entity.TransactionTypeIncome,
		Amount:     dec(amount),
		Date:       day,
	}
}

func transfer(accountID, toAccountID uuid.UUID, amount string, day time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		ToAccountID: &toAccountID,
		Type:        entity.TransactionTypeTransfer,
		Amount:      dec(amount),
		Date:        day,
	}
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal, what string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s: expected %s, got %s", what, want, got)
	}
}

func requireFloatNear(t *testing.T, want, got, tolerance float64, what string) {
	t.Helper()
	if math.Abs(want-got) > tolerance {
		t.Errorf("%s: expected %v, got %v", what, want, got)
	}
}
