package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// UpcomingPlanned summarizes pending planned transactions due within a
// window.
type UpcomingPlanned struct {
	Transactions    []*entity.PlannedTransaction
	ExpectedIncome  decimal.Decimal
	ExpectedExpense decimal.Decimal
}

// CalculateUpcomingPlanned returns the pending planned transactions whose
// next occurrence falls within [asOf, asOf+days], sorted by occurrence date,
// with expected income and expense totals. Completed and cancelled entries
// never appear.
func CalculateUpcomingPlanned(
	planned []*entity.PlannedTransaction,
	days int,
	asOf time.Time,
) UpcomingPlanned {
	upcoming := UpcomingPlanned{
		Transactions:    []*entity.PlannedTransaction{},
		ExpectedIncome:  decimal.Zero,
		ExpectedExpense: decimal.Zero,
	}
	if days <= 0 {
		return upcoming
	}

	windowEnd := StartOfDay(asOf).AddDate(0, 0, days)
	for _, pt := range planned {
		if pt.Status != entity.PlannedStatusPending {
			continue
		}
		if !InDayRange(pt.NextOccurrenceDate, asOf, windowEnd) {
			continue
		}
		upcoming.Transactions = append(upcoming.Transactions, pt)
		switch pt.Type {
		case entity.TransactionTypeIncome:
			upcoming.ExpectedIncome = upcoming.ExpectedIncome.Add(pt.Amount)
		case entity.TransactionTypeExpense:
			upcoming.ExpectedExpense = upcoming.ExpectedExpense.Add(pt.Amount)
		}
	}

	sort.Slice(upcoming.Transactions, func(i, j int) bool {
		return upcoming.Transactions[i].NextOccurrenceDate.Before(upcoming.Transactions[j].NextOccurrenceDate)
	})

	return upcoming
}
