package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestCalculateBudgetProgress(t *testing.T) {
	account := uuid.New()
	groceries := uuid.New()

	categories := []*entity.Category{
		{ID: groceries, Name: "Groceries"},
	}

	budget := &entity.Budget{
		ID:         uuid.New(),
		CategoryID: &groceries,
		Amount:     dec("100"),
		Period:     entity.BudgetPeriodMonthly,
		StartDate:  date(2024, time.January, 1),
	}

	ledger := []*entity.Transaction{
		expense(account, &groceries, "60", date(2024, time.March, 5)),
		expense(account, &groceries, "30", date(2024, time.March, 20)),
		expense(account, &groceries, "500", date(2024, time.February, 10)), // previous period
		expense(account, nil, "999", date(2024, time.March, 12)),           // other category
	}

	got := CalculateBudgetProgress([]*entity.Budget{budget}, ledger, categories, date(2024, time.March, 25))

	if len(got) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(got))
	}

	p := got[0]
	if p.CategoryName != "Groceries" {
		t.Errorf("expected category name Groceries, got %s", p.CategoryName)
	}
	requireDecimalEqual(t, "90", p.Spent, "spent in current period only")
	requireDecimalEqual(t, "10", p.Remaining, "remaining")
	requireFloatNear(t, 90, p.Percentage, 0.001, "percentage")
	if p.Exceeded {
		t.Error("budget at 90% must not be exceeded")
	}
	if !SameDay(p.PeriodStart, date(2024, time.March, 1)) || !SameDay(p.PeriodEnd, date(2024, time.March, 31)) {
		t.Errorf("expected March period, got %s..%s", p.PeriodStart, p.PeriodEnd)
	}
}

func TestCalculateBudgetProgressExceededUsesEpsilon(t *testing.T) {
	account := uuid.New()

	budget := &entity.Budget{
		ID:        uuid.New(),
		Amount:    dec("100"),
		Period:    entity.BudgetPeriodMonthly,
		StartDate: date(2024, time.March, 1),
	}

	tests := []struct {
		name     string
		spent    string
		exceeded bool
	}{
		{name: "under", spent: "99.50", exceeded: false},
		{name: "exactly at limit", spent: "100", exceeded: false},
		{name: "within epsilon", spent: "100.01", exceeded: false},
		{name: "beyond epsilon", spent: "100.02", exceeded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := []*entity.Transaction{
				expense(account, nil, tt.spent, date(2024, time.March, 10)),
			}
			got := CalculateBudgetProgress([]*entity.Budget{budget}, ledger, nil, date(2024, time.March, 15))
			if len(got) != 1 {
				t.Fatalf("expected 1 budget, got %d", len(got))
			}
			if got[0].Exceeded != tt.exceeded {
				t.Errorf("spent %s: expected exceeded=%v", tt.spent, tt.exceeded)
			}
		})
	}
}

func TestCalculateBudgetProgressOverallBudgetCountsAllExpenses(t *testing.T) {
	account := uuid.New()
	dining := uuid.New()

	budget := &entity.Budget{
		ID:        uuid.New(),
		Amount:    dec("200"),
		Period:    entity.BudgetPeriodWeekly,
		StartDate: date(2024, time.March, 4),
	}

	ledger := []*entity.Transaction{
		expense(account, &dining, "50", date(2024, time.March, 5)),
		expense(account, nil, "25", date(2024, time.March, 6)),
		income(account, nil, "1000", date(2024, time.March, 6)),
	}

	got := CalculateBudgetProgress([]*entity.Budget{budget}, ledger, nil, date(2024, time.March, 7))

	if len(got) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(got))
	}
	requireDecimalEqual(t, "75", got[0].Spent, "all expenses counted")
	if got[0].CategoryName != "" {
		t.Errorf("overall budget has no category name, got %q", got[0].CategoryName)
	}
	if !SameDay(got[0].PeriodEnd, date(2024, time.March, 10)) {
		t.Errorf("expected weekly period ending Mar 10, got %s", got[0].PeriodEnd)
	}
}

func TestCalculateBudgetProgressSplitAttribution(t *testing.T) {
	account := uuid.New()
	groceries := uuid.New()

	budget := &entity.Budget{
		ID:         uuid.New(),
		CategoryID: &groceries,
		Amount:     dec("100"),
		Period:     entity.BudgetPeriodMonthly,
		StartDate:  date(2024, time.March, 1),
	}

	split := expense(account, nil, "100", date(2024, time.March, 5))
	split.Splits = []entity.Split{
		{CategoryID: &groceries, Amount: dec("65")},
		{CategoryID: nil, Amount: dec("35")},
	}

	got := CalculateBudgetProgress([]*entity.Budget{budget}, []*entity.Transaction{split}, nil, date(2024, time.March, 15))

	if len(got) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(got))
	}
	requireDecimalEqual(t, "65", got[0].Spent, "only the matching split portion")
}

func TestCalculateBudgetProgressSkipsInactiveBudgets(t *testing.T) {
	ended := date(2024, time.February, 29)

	budgets := []*entity.Budget{
		{
			ID:        uuid.New(),
			Amount:    dec("100"),
			Period:    entity.BudgetPeriodMonthly,
			StartDate: date(2024, time.May, 1), // not started yet
		},
		{
			ID:        uuid.New(),
			Amount:    dec("100"),
			Period:    entity.BudgetPeriodMonthly,
			StartDate: date(2024, time.January, 1),
			EndDate:   &ended, // already over
		},
	}

	got := CalculateBudgetProgress(budgets, nil, nil, date(2024, time.March, 15))

	if len(got) != 0 {
		t.Errorf("expected no active budgets, got %d", len(got))
	}
}

func TestCalculateBudgetProgressSortedByPercentage(t *testing.T) {
	account := uuid.New()
	a := uuid.New()
	b := uuid.New()

	budgets := []*entity.Budget{
		{ID: uuid.New(), CategoryID: &a, Amount: dec("100"), Period: entity.BudgetPeriodMonthly, StartDate: date(2024, time.March, 1)},
		{ID: uuid.New(), CategoryID: &b, Amount: dec("100"), Period: entity.BudgetPeriodMonthly, StartDate: date(2024, time.March, 1)},
	}

	ledger := []*entity.Transaction{
		expense(account, &a, "20", date(2024, time.March, 5)),
		expense(account, &b, "80", date(2024, time.March, 5)),
	}

	got := CalculateBudgetProgress(budgets, ledger, nil, date(2024, time.March, 15))

	if len(got) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(got))
	}
	if got[0].Percentage < got[1].Percentage {
		t.Errorf("expected descending percentage order, got %v then %v", got[0].Percentage, got[1].Percentage)
	}
}
