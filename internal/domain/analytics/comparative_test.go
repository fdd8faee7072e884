package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestCalculateBalanceTrend(t *testing.T) {
	checking := uuid.New()
	savings := uuid.New()

	accounts := []*entity.Account{
		{ID: checking, Name: "Checking", Balance: dec("700")},
		{ID: savings, Name: "Savings", Balance: dec("300")},
	}

	ledger := []*entity.Transaction{
		income(checking, nil, "500", date(2024, time.March, 9)),
		expense(checking, nil, "200", date(2024, time.March, 10)),
		transfer(checking, savings, "400", date(2024, time.March, 10)), // balance-neutral
	}

	got := CalculateBalanceTrend(ledger, accounts, 3, date(2024, time.March, 10))

	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}

	// Last point is always the current sum of account balances.
	requireDecimalEqual(t, "1000", got[2].Balance, "final point")
	if !SameDay(got[2].Date, date(2024, time.March, 10)) {
		t.Errorf("expected final point on Mar 10, got %s", got[2].Date)
	}

	// Mar 10 had a net delta of -200: the day before ends 200 higher.
	requireDecimalEqual(t, "1200", got[1].Balance, "Mar 9 close")
	// Mar 9 had +500 income: Mar 8 ends 500 lower.
	requireDecimalEqual(t, "700", got[0].Balance, "Mar 8 close")

	for i := 1; i < len(got); i++ {
		if !got[i].Date.After(got[i-1].Date) {
			t.Errorf("points not ascending at index %d", i)
		}
	}
}

func TestCalculateBalanceTrendNoDays(t *testing.T) {
	if got := CalculateBalanceTrend(nil, nil, 0, date(2024, time.March, 10)); len(got) != 0 {
		t.Errorf("expected empty series for days=0, got %d points", len(got))
	}
}

func TestCompareYearOverYear(t *testing.T) {
	account := uuid.New()

	ledger := []*entity.Transaction{
		// Current window: March 2024.
		income(account, nil, "3000", date(2024, time.March, 5)),
		expense(account, nil, "1200", date(2024, time.March, 12)),
		// Previous window: same-length window ending 2023-03-31.
		income(account, nil, "2000", date(2023, time.March, 8)),
		expense(account, nil, "1000", date(2023, time.March, 20)),
		// Outside both windows.
		expense(account, nil, "9999", date(2023, time.February, 27)),
	}

	got := CompareYearOverYear(ledger, date(2024, time.March, 1), date(2024, time.March, 31))

	if !SameDay(got.PreviousEnd, date(2023, time.March, 31)) {
		t.Errorf("expected previous end 2023-03-31, got %s", got.PreviousEnd)
	}
	// 31-day window ending 2023-03-31 starts 2023-03-01.
	if !SameDay(got.PreviousStart, date(2023, time.March, 1)) {
		t.Errorf("expected previous start 2023-03-01, got %s", got.PreviousStart)
	}

	requireDecimalEqual(t, "3000", got.CurrentPeriod.Income, "current income")
	requireDecimalEqual(t, "1200", got.CurrentPeriod.Expense, "current expense")
	requireDecimalEqual(t, "2000", got.PreviousPeriod.Income, "previous income")
	if got.PreviousPeriod.TransactionCount != 2 {
		t.Errorf("expected 2 previous transactions, got %d", got.PreviousPeriod.TransactionCount)
	}

	requireDecimalEqual(t, "1000", got.IncomeChange, "income change")
	requireDecimalEqual(t, "200", got.ExpenseChange, "expense change")
	requireDecimalEqual(t, "800", got.NetChange, "net change")

	requireFloatNear(t, 50, got.IncomeChangePercent, 0.001, "income change percent")
	requireFloatNear(t, 20, got.ExpenseChangePercent, 0.001, "expense change percent")
	requireFloatNear(t, 80, got.NetChangePercent, 0.001, "net change percent")
}

func TestCompareYearOverYearZeroPrevious(t *testing.T) {
	account := uuid.New()

	ledger := []*entity.Transaction{
		income(account, nil, "3000", date(2024, time.March, 5)),
		expense(account, nil, "1200", date(2024, time.March, 12)),
	}

	got := CompareYearOverYear(ledger, date(2024, time.March, 1), date(2024, time.March, 31))

	// No previous-year activity: every percent change is exactly 0.
	if got.IncomeChangePercent != 0 || got.ExpenseChangePercent != 0 || got.NetChangePercent != 0 {
		t.Errorf("expected all change percents 0, got %v %v %v",
			got.IncomeChangePercent, got.ExpenseChangePercent, got.NetChangePercent)
	}
	requireDecimalEqual(t, "3000", got.IncomeChange, "absolute change still reported")
}
