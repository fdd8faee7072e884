package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// BalancePoint is the reconstructed total balance at the end of one day.
type BalancePoint struct {
	Date    time.Time
	Balance decimal.Decimal
}

// CalculateBalanceTrend reconstructs a day-by-day total balance series for the
// last `days` days ending at asOf, walking backwards from the current sum of
// account balances. For each day the day's transactions are reversed before
// stepping to the previous day: income is subtracted, expense added back.
// Transfers move money between own accounts, so they are treated as
// balance-neutral and ignored. The series is ascending by date and its last
// entry always equals the passed-in current balance.
//
// This is an approximation: it trusts the current account balances and
// assumes every relevant transaction is in the ledger. When either does not
// hold, the series is silently off. That limitation is accepted; the engine
// never cross-checks.
func CalculateBalanceTrend(
	transactions []*entity.Transaction,
	accounts []*entity.Account,
	days int,
	asOf time.Time,
) []BalancePoint {
	if days <= 0 {
		return []BalancePoint{}
	}

	balance := decimal.Zero
	for _, account := range accounts {
		balance = balance.Add(account.Balance)
	}

	// Daily income/expense deltas, keyed by calendar day.
	deltas := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		key := tx.Date.Format("2006-01-02")
		switch tx.Type {
		case entity.TransactionTypeIncome:
			deltas[key] = deltas[key].Add(tx.Amount)
		case entity.TransactionTypeExpense:
			deltas[key] = deltas[key].Sub(tx.Amount)
		}
	}

	points := make([]BalancePoint, days)
	day := StartOfDay(asOf)
	running := balance
	for i := days - 1; i >= 0; i-- {
		points[i] = BalancePoint{Date: day, Balance: running}
		// Reverse this day's effect before stepping back.
		running = running.Sub(deltas[day.Format("2006-01-02")])
		day = day.AddDate(0, 0, -1)
	}

	return points
}

// PeriodTotals holds income/expense totals for one comparison window.
type PeriodTotals struct {
	Income           decimal.Decimal
	Expense          decimal.Decimal
	Net              decimal.Decimal
	TransactionCount int
}

// YearOverYearComparison compares a window against the same-length window one
// calendar year earlier.
type YearOverYearComparison struct {
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time

	CurrentPeriod  PeriodTotals
	PreviousPeriod PeriodTotals

	IncomeChange  decimal.Decimal
	ExpenseChange decimal.Decimal
	NetChange     decimal.Decimal

	IncomeChangePercent  float64 // 0 when previous income is 0
	ExpenseChangePercent float64 // 0 when previous expense is 0
	NetChangePercent     float64 // 0 when previous net is exactly 0
}

// CompareYearOverYear computes totals for [startDate, endDate] and for the
// window of the same day-length ending exactly one calendar year before
// endDate (calendar-year subtraction, not a fixed 365-day offset). Percentage
// changes short-circuit to 0 whenever the corresponding previous value is 0.
func CompareYearOverYear(
	transactions []*entity.Transaction,
	startDate, endDate time.Time,
) YearOverYearComparison {
	start := StartOfDay(startDate)
	end := StartOfDay(endDate)

	previousEnd := end.AddDate(-1, 0, 0)
	previousStart := previousEnd.AddDate(0, 0, -(DaySpan(start, end) - 1))

	comparison := YearOverYearComparison{
		CurrentStart:   start,
		CurrentEnd:     end,
		PreviousStart:  previousStart,
		PreviousEnd:    previousEnd,
		CurrentPeriod:  totalsInRange(transactions, start, end),
		PreviousPeriod: totalsInRange(transactions, previousStart, previousEnd),
	}

	comparison.IncomeChange = comparison.CurrentPeriod.Income.Sub(comparison.PreviousPeriod.Income)
	comparison.ExpenseChange = comparison.CurrentPeriod.Expense.Sub(comparison.PreviousPeriod.Expense)
	comparison.NetChange = comparison.CurrentPeriod.Net.Sub(comparison.PreviousPeriod.Net)

	comparison.IncomeChangePercent = percentageOf(comparison.IncomeChange, comparison.PreviousPeriod.Income)
	comparison.ExpenseChangePercent = percentageOf(comparison.ExpenseChange, comparison.PreviousPeriod.Expense)
	comparison.NetChangePercent = percentageOf(comparison.NetChange, comparison.PreviousPeriod.Net)

	return comparison
}

func totalsInRange(transactions []*entity.Transaction, start, end time.Time) PeriodTotals {
	totals := PeriodTotals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, tx := range transactions {
		if !InDayRange(tx.Date, start, end) {
			continue
		}
		switch tx.Type {
		case entity.TransactionTypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
			totals.TransactionCount++
		case entity.TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
			totals.TransactionCount++
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}
