package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestCalculateCategoryPerformance(t *testing.T) {
	account := uuid.New()
	dining := uuid.New()
	rent := uuid.New()

	categories := []*entity.Category{
		{ID: dining, Name: "Dining", Icon: "🍜", Color: "#EF4444"},
		{ID: rent, Name: "Rent", Icon: "🏠", Color: "#8B5CF6"},
	}

	ledger := []*entity.Transaction{
		expense(account, &dining, "20", date(2024, time.March, 2)),
		expense(account, &dining, "60", date(2024, time.March, 8)),
		expense(account, &dining, "40", date(2024, time.March, 9)),
		expense(account, &rent, "900", date(2024, time.March, 1)),
		income(account, nil, "3000", date(2024, time.March, 1)), // never counted
		expense(account, &dining, "999", date(2024, time.June, 1)),
	}

	got := CalculateCategoryPerformance(ledger, categories, date(2024, time.March, 1), date(2024, time.March, 10))

	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}

	// Sorted by total spent descending: rent first.
	if got[0].Name != "Rent" {
		t.Errorf("expected Rent first, got %s", got[0].Name)
	}
	requireDecimalEqual(t, "900", got[0].TotalSpent, "rent total")

	d := got[1]
	if d.Name != "Dining" {
		t.Fatalf("expected Dining second, got %s", d.Name)
	}
	requireDecimalEqual(t, "120", d.TotalSpent, "dining total")
	if d.TransactionCount != 3 {
		t.Errorf("expected 3 dining transactions, got %d", d.TransactionCount)
	}
	requireDecimalEqual(t, "40", d.Average, "dining average")
	requireDecimalEqual(t, "60", d.Max, "dining max")
	requireDecimalEqual(t, "20", d.Min, "dining min")
	if !d.LastTransaction.Equal(date(2024, time.March, 9)) {
		t.Errorf("expected last transaction Mar 9, got %s", d.LastTransaction)
	}
	// 20 in the first half, 100 in the second: increasing.
	if d.Trend != TrendIncreasing {
		t.Errorf("expected increasing dining trend, got %s", d.Trend)
	}
	// Rent all in the first half: decreasing.
	if got[0].Trend != TrendDecreasing {
		t.Errorf("expected decreasing rent trend, got %s", got[0].Trend)
	}
}

func TestCalculateCategoryPerformanceSplitAware(t *testing.T) {
	account := uuid.New()
	groceries := uuid.New()

	split := expense(account, nil, "100", date(2024, time.March, 5))
	split.Splits = []entity.Split{
		{CategoryID: &groceries, Amount: dec("75")},
		{CategoryID: nil, Amount: dec("25")},
	}

	got := CalculateCategoryPerformance(
		[]*entity.Transaction{split}, nil,
		date(2024, time.March, 1), date(2024, time.March, 31),
	)

	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	requireDecimalEqual(t, "75", got[0].TotalSpent, "split portion, not parent amount")
	requireDecimalEqual(t, "75", got[0].Max, "max is the portion amount")
	requireDecimalEqual(t, "25", got[1].TotalSpent, "uncategorized portion")
}

func TestCalculateCategoryPerformanceEmptyRange(t *testing.T) {
	got := CalculateCategoryPerformance(nil, nil, date(2024, time.March, 10), date(2024, time.March, 1))
	if len(got) != 0 {
		t.Errorf("expected empty result on inverted range, got %d", len(got))
	}
}

func TestCalculateAccountStatistics(t *testing.T) {
	checking := uuid.New()
	savings := uuid.New()

	accounts := []*entity.Account{
		{ID: checking, Name: "Checking", Color: "#3B82F6"},
		{ID: savings, Name: "Savings", Color: "#10B981"},
	}

	ledger := []*entity.Transaction{
		income(checking, nil, "1000", date(2024, time.March, 1)),
		expense(checking, nil, "400", date(2024, time.March, 5)),
		expense(checking, nil, "100", date(2024, time.March, 8)),
		expense(savings, nil, "50", date(2024, time.March, 2)),
		transfer(checking, savings, "9999", date(2024, time.March, 3)), // not counted
	}

	got := CalculateAccountStatistics(ledger, accounts)

	if len(got) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(got))
	}

	c := got[0]
	if c.Name != "Checking" {
		t.Fatalf("expected Checking first (most transactions), got %s", c.Name)
	}
	requireDecimalEqual(t, "1000", c.Income, "checking income")
	requireDecimalEqual(t, "500", c.Expense, "checking expense")
	requireDecimalEqual(t, "500", c.NetFlow, "checking net flow")
	if c.TransactionCount != 3 {
		t.Errorf("expected 3 transactions, got %d", c.TransactionCount)
	}
	requireDecimalEqual(t, "500", c.AverageTransaction, "checking average = 1500/3")
	requireDecimalEqual(t, "1000", c.LargestTransaction, "largest absolute transaction")
	if !c.LastTransaction.Equal(date(2024, time.March, 8)) {
		t.Errorf("expected last transaction Mar 8, got %s", c.LastTransaction)
	}

	if got[1].Name != "Savings" {
		t.Errorf("expected Savings second, got %s", got[1].Name)
	}
	requireDecimalEqual(t, "-50", got[1].NetFlow, "savings net flow")
}

func TestCalculateAccountStatisticsUnknownAccount(t *testing.T) {
	got := CalculateAccountStatistics(
		[]*entity.Transaction{expense(uuid.New(), nil, "10", date(2024, time.March, 1))},
		nil,
	)
	if len(got) != 1 || got[0].Name != UnknownAccountName {
		t.Fatalf("expected %q placeholder, got %+v", UnknownAccountName, got)
	}
}
