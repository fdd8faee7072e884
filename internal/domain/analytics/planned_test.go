package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func planned(txType entity.TransactionType, amount string, due time.Time, status entity.PlannedStatus) *entity.PlannedTransaction {
	return &entity.PlannedTransaction{
		ID:                 uuid.New(),
		AccountID:          uuid.New(),
		Type:               txType,
		Amount:             dec(amount),
		ScheduledDate:      due,
		NextOccurrenceDate: due,
		Status:             status,
	}
}

func TestCalculateUpcomingPlanned(t *testing.T) {
	asOf := date(2024, time.March, 1)

	entries := []*entity.PlannedTransaction{
		planned(entity.TransactionTypeExpense, "900", date(2024, time.March, 5), entity.PlannedStatusPending),
		planned(entity.TransactionTypeIncome, "3000", date(2024, time.March, 25), entity.PlannedStatusPending),
		planned(entity.TransactionTypeExpense, "40", date(2024, time.March, 2), entity.PlannedStatusPending),
		planned(entity.TransactionTypeExpense, "75", date(2024, time.March, 10), entity.PlannedStatusCompleted), // never shown
		planned(entity.TransactionTypeExpense, "60", date(2024, time.March, 12), entity.PlannedStatusCancelled), // never shown
		planned(entity.TransactionTypeExpense, "500", date(2024, time.May, 1), entity.PlannedStatusPending),     // outside window
	}

	got := CalculateUpcomingPlanned(entries, 30, asOf)

	if len(got.Transactions) != 3 {
		t.Fatalf("expected 3 upcoming entries, got %d", len(got.Transactions))
	}

	// Sorted by occurrence date.
	requireDecimalEqual(t, "40", got.Transactions[0].Amount, "first due entry")
	requireDecimalEqual(t, "900", got.Transactions[1].Amount, "second due entry")
	requireDecimalEqual(t, "3000", got.Transactions[2].Amount, "last due entry")

	requireDecimalEqual(t, "3000", got.ExpectedIncome, "expected income")
	requireDecimalEqual(t, "940", got.ExpectedExpense, "expected expense")
}

func TestCalculateUpcomingPlannedWindowIsInclusive(t *testing.T) {
	asOf := date(2024, time.March, 1)

	entries := []*entity.PlannedTransaction{
		planned(entity.TransactionTypeExpense, "10", date(2024, time.March, 1), entity.PlannedStatusPending),  // due today
		planned(entity.TransactionTypeExpense, "20", date(2024, time.March, 8), entity.PlannedStatusPending),  // last day of window
		planned(entity.TransactionTypeExpense, "30", date(2024, time.March, 9), entity.PlannedStatusPending),  // just outside
		planned(entity.TransactionTypeExpense, "40", date(2024, time.February, 28), entity.PlannedStatusPending), // overdue, not upcoming
	}

	got := CalculateUpcomingPlanned(entries, 7, asOf)

	if len(got.Transactions) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got.Transactions))
	}
	requireDecimalEqual(t, "30", got.ExpectedExpense, "boundary days included, rest excluded")
}

func TestCalculateUpcomingPlannedEmptyWindow(t *testing.T) {
	entries := []*entity.PlannedTransaction{
		planned(entity.TransactionTypeExpense, "10", date(2024, time.March, 5), entity.PlannedStatusPending),
	}

	got := CalculateUpcomingPlanned(entries, 0, date(2024, time.March, 1))

	if len(got.Transactions) != 0 {
		t.Errorf("expected no entries for a zero-day window, got %d", len(got.Transactions))
	}
	requireDecimalEqual(t, "0", got.ExpectedIncome, "zero income")
	requireDecimalEqual(t, "0", got.ExpectedExpense, "zero expense")
}
