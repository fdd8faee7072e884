package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestFilterTransactions(t *testing.T) {
	accountA := uuid.New()
	accountB := uuid.New()
	groceries := uuid.New()
	travel := uuid.New()

	coffee := expense(accountA, &groceries, "4.50", date(2024, time.March, 5))
	coffee.Description = "Morning Coffee"
	flight := expense(accountB, &travel, "320.00", date(2024, time.March, 20))
	flight.Description = "Flight to Rome"
	salary := income(accountA, nil, "2500.00", date(2024, time.March, 1))
	salary.Description = "Salary"

	splitShopping := expense(accountA, nil, "60.00", date(2024, time.March, 10))
	splitShopping.Description = "Supermarket run"
	splitShopping.Splits = []entity.Split{
		{CategoryID: &groceries, Amount: dec("45.00")},
		{CategoryID: &travel, Amount: dec("15.00")},
	}

	ledger := []*entity.Transaction{coffee, flight, salary, splitShopping}

	tests := []struct {
		name     string
		criteria FilterCriteria
		expected []*entity.Transaction
	}{
		{
			name:     "no criteria returns everything",
			criteria: FilterCriteria{},
			expected: ledger,
		},
		{
			name:     "type all disables type filtering",
			criteria: FilterCriteria{Type: TypeAll},
			expected: ledger,
		},
		{
			name:     "type expense",
			criteria: FilterCriteria{Type: "expense"},
			expected: []*entity.Transaction{coffee, flight, splitShopping},
		},
		{
			name:     "account membership",
			criteria: FilterCriteria{AccountIDs: []uuid.UUID{accountB}},
			expected: []*entity.Transaction{flight},
		},
		{
			name:     "category matches a split even when primary does not",
			criteria: FilterCriteria{CategoryIDs: []uuid.UUID{travel}},
			expected: []*entity.Transaction{flight, splitShopping},
		},
		{
			name: "date range is inclusive at day granularity",
			criteria: FilterCriteria{
				StartDate: ptr(date(2024, time.March, 5)),
				EndDate:   ptr(date(2024, time.March, 10)),
			},
			expected: []*entity.Transaction{coffee, splitShopping},
		},
		{
			name: "amount bounds are inclusive",
			criteria: FilterCriteria{
				MinAmount: ptr(dec("4.50")),
				MaxAmount: ptr(dec("60.00")),
			},
			expected: []*entity.Transaction{coffee, splitShopping},
		},
		{
			name:     "search is case-insensitive substring",
			criteria: FilterCriteria{SearchQuery: "coffee"},
			expected: []*entity.Transaction{coffee},
		},
		{
			name: "criteria are ANDed",
			criteria: FilterCriteria{
				Type:       "expense",
				AccountIDs: []uuid.UUID{accountA},
				StartDate:  ptr(date(2024, time.March, 1)),
				EndDate:    ptr(date(2024, time.March, 7)),
			},
			expected: []*entity.Transaction{coffee},
		},
		{
			name:     "no match returns empty, not nil panic",
			criteria: FilterCriteria{SearchQuery: "yacht"},
			expected: []*entity.Transaction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTransactions(ledger, tt.criteria)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d transactions, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i].ID != tt.expected[i].ID {
					t.Errorf("transaction %d: expected %q, got %q", i, tt.expected[i].Description, got[i].Description)
				}
			}
		})
	}
}

func TestFilterTransactionsZeroDateExcludedFromRangeFilter(t *testing.T) {
	account := uuid.New()
	undated := expense(account, nil, "10.00", time.Time{})
	dated := expense(account, nil, "20.00", date(2024, time.March, 5))

	got := FilterTransactions([]*entity.Transaction{undated, dated}, FilterCriteria{
		StartDate: ptr(date(2024, time.January, 1)),
		EndDate:   ptr(date(2024, time.December, 31)),
	})

	if len(got) != 1 || !got[0].Amount.Equal(dec("20.00")) {
		t.Fatalf("expected only the dated transaction, got %d results", len(got))
	}

	// Without a range filter the undated transaction still passes.
	got = FilterTransactions([]*entity.Transaction{undated, dated}, FilterCriteria{})
	if len(got) != 2 {
		t.Fatalf("expected both transactions without a date filter, got %d", len(got))
	}
}

func TestFilterTransactionsDoesNotMutateInput(t *testing.T) {
	account := uuid.New()
	ledger := []*entity.Transaction{
		expense(account, nil, "10.00", date(2024, time.March, 1)),
		expense(account, nil, "20.00", date(2024, time.March, 2)),
	}

	_ = FilterTransactions(ledger, FilterCriteria{Type: "income"})

	if len(ledger) != 2 {
		t.Fatal("input slice was modified")
	}
	requireDecimalEqual(t, "10.00", ledger[0].Amount, "first amount")
	requireDecimalEqual(t, "20.00", ledger[1].Amount, "second amount")
}
