package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// AmountEpsilon is the tolerance used for monetary comparisons such as
// "remaining ≈ 0" and budget-exceeded checks.
var AmountEpsilon = decimal.NewFromFloat(0.01)

// BudgetProgress describes consumption of one budget in its current period.
type BudgetProgress struct {
	BudgetID     uuid.UUID
	CategoryID   *uuid.UUID // nil for an overall budget
	CategoryName string
	Amount       decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal
	Percentage   float64 // spent / amount × 100, 0 when amount is 0
	Exceeded     bool    // spent > amount + epsilon
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// CalculateBudgetProgress computes, for every budget whose current period
// contains asOf, the expense total accrued against it. Category budgets use
// the same split-aware attribution as the category aggregation; a budget
// without a category counts all expenses. Budgets that have not started yet
// or whose end date has passed are skipped. Results are sorted by percentage
// descending.
func CalculateBudgetProgress(
	budgets []*entity.Budget,
	transactions []*entity.Transaction,
	categories []*entity.Category,
	asOf time.Time,
) []BudgetProgress {
	categoryIndex := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		categoryIndex[cat.ID] = cat
	}

	result := make([]BudgetProgress, 0, len(budgets))
	for _, budget := range budgets {
		periodStart, periodEnd, ok := currentBudgetPeriod(budget, asOf)
		if !ok {
			continue
		}

		spent := spentAgainstBudget(budget, transactions, periodStart, periodEnd)

		progress := BudgetProgress{
			BudgetID:    budget.ID,
			CategoryID:  budget.CategoryID,
			Amount:      budget.Amount,
			Spent:       spent,
			Remaining:   budget.Amount.Sub(spent),
			Percentage:  percentageOf(spent, budget.Amount),
			Exceeded:    spent.GreaterThan(budget.Amount.Add(AmountEpsilon)),
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
		}
		if budget.CategoryID != nil {
			progress.CategoryName = UncategorizedName
			if cat, ok := categoryIndex[*budget.CategoryID]; ok {
				progress.CategoryName = cat.Name
			}
		}
		result = append(result, progress)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Percentage > result[j].Percentage
	})

	return result
}

// currentBudgetPeriod advances period windows from the budget's start date
// until one contains asOf. Returns false when asOf lies before the budget
// starts or after its end date.
func currentBudgetPeriod(budget *entity.Budget, asOf time.Time) (time.Time, time.Time, bool) {
	day := StartOfDay(asOf)
	if day.Before(StartOfDay(budget.StartDate)) {
		return time.Time{}, time.Time{}, false
	}
	if budget.EndDate != nil && day.After(StartOfDay(*budget.EndDate)) {
		return time.Time{}, time.Time{}, false
	}

	periodStart := StartOfDay(budget.StartDate)
	for {
		periodEnd := budgetPeriodEnd(periodStart, budget.Period)
		if !day.After(periodEnd) {
			return periodStart, periodEnd, true
		}
		periodStart = periodEnd.AddDate(0, 0, 1)
	}
}

func budgetPeriodEnd(periodStart time.Time, period entity.BudgetPeriod) time.Time {
	switch period {
	case entity.BudgetPeriodWeekly:
		return periodStart.AddDate(0, 0, 6)
	case entity.BudgetPeriodYearly:
		return periodStart.AddDate(1, 0, -1)
	default:
		return periodStart.AddDate(0, 1, -1)
	}
}

// spentAgainstBudget sums expenses within the period, restricted to the
// budget's category when it has one (split-aware).
func spentAgainstBudget(
	budget *entity.Budget,
	transactions []*entity.Transaction,
	periodStart, periodEnd time.Time,
) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || !InDayRange(tx.Date, periodStart, periodEnd) {
			continue
		}
		if budget.CategoryID == nil {
			spent = spent.Add(tx.Amount)
			continue
		}
		for _, portion := range tx.CategoryPortions() {
			if portion.CategoryID != nil && *portion.CategoryID == *budget.CategoryID {
				spent = spent.Add(portion.Amount)
			}
		}
	}
	return spent
}
