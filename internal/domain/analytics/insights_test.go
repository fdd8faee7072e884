package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestGenerateInsightsAllRulesFire(t *testing.T) {
	account := uuid.New()

	// Mean expense 10 across nine small ones plus one of 500: the outlier is
	// far beyond twice the mean.
	ledger := make([]*entity.Transaction, 0, 10)
	for i := 0; i < 9; i++ {
		ledger = append(ledger, expense(account, nil, "10", date(2024, time.March, i+1)))
	}
	ledger = append(ledger, expense(account, nil, "500", date(2024, time.March, 15)))

	input := InsightInput{
		Velocity: SpendingVelocity{ChangePercent: 35, Trend: TrendIncreasing},
		CategorySpending: []CategorySpending{
			{Name: "Dining", Percentage: 55},
		},
		AccountStats: []AccountStatistics{
			{Name: "Checking", TransactionCount: 12},
			{Name: "Savings", TransactionCount: 2},
		},
		Summary:      Summary{TotalIncome: dec("1000"), TotalExpense: dec("590"), Net: dec("410"), SavingsRate: 41},
		Transactions: ledger,
	}

	got := GenerateInsights(input)

	if len(got) != 5 {
		t.Fatalf("expected all 5 insights, got %d: %v", len(got), got)
	}

	assertions := []struct {
		index    int
		contains string
	}{
		{0, "up 35%"},
		{1, "Dining accounts for 55%"},
		{2, "Checking (12 transactions)"},
		{3, "1 unusually large expense"},
		{4, "saved 41%"},
	}
	for _, a := range assertions {
		if !strings.Contains(got[a.index], a.contains) {
			t.Errorf("insight %d: expected to contain %q, got %q", a.index, a.contains, got[a.index])
		}
	}
}

func TestGenerateInsightsQuietPeriod(t *testing.T) {
	account := uuid.New()

	input := InsightInput{
		Velocity: SpendingVelocity{ChangePercent: 3, Trend: TrendStable},
		CategorySpending: []CategorySpending{
			{Name: "Groceries", Percentage: 30},
		},
		AccountStats: []AccountStatistics{
			{Name: "Checking", TransactionCount: 4},
		},
		Summary: Summary{TotalIncome: dec("1000"), TotalExpense: dec("900"), Net: dec("100"), SavingsRate: 10},
		Transactions: []*entity.Transaction{
			expense(account, nil, "100", date(2024, time.March, 1)),
		},
	}

	if got := GenerateInsights(input); len(got) != 0 {
		t.Errorf("expected no insights in a quiet period, got %v", got)
	}
}

func TestGenerateInsightsOverspending(t *testing.T) {
	input := InsightInput{
		Summary: Summary{TotalIncome: dec("500"), TotalExpense: dec("800"), Net: dec("-300"), SavingsRate: -60},
	}

	got := GenerateInsights(input)

	if len(got) != 1 {
		t.Fatalf("expected only the overspending insight, got %v", got)
	}
	if !strings.Contains(got[0], "more than you earned") {
		t.Errorf("unexpected message: %q", got[0])
	}
}

func TestGenerateInsightsSpendingDown(t *testing.T) {
	input := InsightInput{
		Velocity: SpendingVelocity{ChangePercent: -25, Trend: TrendDecreasing},
	}

	got := GenerateInsights(input)

	if len(got) != 1 || !strings.Contains(got[0], "down 25%") {
		t.Errorf("expected a single spending-down insight, got %v", got)
	}
}

func TestCountLargeExpenses(t *testing.T) {
	account := uuid.New()

	tests := []struct {
		name     string
		amounts  []string
		expected int
	}{
		{name: "no expenses", amounts: nil, expected: 0},
		{name: "uniform amounts", amounts: []string{"10", "10", "10"}, expected: 0},
		{name: "one outlier", amounts: []string{"10", "10", "10", "100"}, expected: 1},
		{name: "exactly twice the mean is not large", amounts: []string{"10", "10", "40"}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ledger []*entity.Transaction
			for i, amount := range tt.amounts {
				ledger = append(ledger, expense(account, nil, amount, date(2024, time.March, i+1)))
			}
			if got := countLargeExpenses(ledger); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
