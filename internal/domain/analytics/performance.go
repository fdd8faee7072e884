package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryPerformance describes expense behaviour for one category over a
// range.
type CategoryPerformance struct {
	CategoryID       *uuid.UUID
	Name             string
	Icon             string
	Color            string
	TotalSpent       decimal.Decimal
	TransactionCount int
	Average          decimal.Decimal
	Max              decimal.Decimal
	Min              decimal.Decimal
	LastTransaction  time.Time
	Trend            Trend
	ChangePercent    float64
}

// categoryPerformanceAccumulator folds per-category expense portions.
type categoryPerformanceAccumulator struct {
	total      decimal.Decimal
	count      int
	max        decimal.Decimal
	min        decimal.Decimal
	last       time.Time
	firstHalf  decimal.Decimal
	secondHalf decimal.Decimal
}

// CalculateCategoryPerformance computes per-category expense statistics over
// [startDate, endDate]. Attribution is split-aware with the same rule as
// CalculateCategorySpending. Each category's trend compares the two halves of
// the range exactly like the spending velocity trend, on per-category sums.
// Results are sorted descending by total spent.
func CalculateCategoryPerformance(
	transactions []*entity.Transaction,
	categories []*entity.Category,
	startDate, endDate time.Time,
) []CategoryPerformance {
	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return []CategoryPerformance{}
	}

	start := StartOfDay(startDate)
	end := EndOfDay(endDate)
	mid := midpoint(start, end)

	accumulators := make(map[uuid.UUID]*categoryPerformanceAccumulator)
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || !InDayRange(tx.Date, start, end) {
			continue
		}
		for _, portion := range tx.CategoryPortions() {
			key := uuid.Nil
			if portion.CategoryID != nil {
				key = *portion.CategoryID
			}
			acc, ok := accumulators[key]
			if !ok {
				acc = &categoryPerformanceAccumulator{
					total:      decimal.Zero,
					max:        portion.Amount,
					min:        portion.Amount,
					firstHalf:  decimal.Zero,
					secondHalf: decimal.Zero,
				}
				accumulators[key] = acc
			}
			acc.total = acc.total.Add(portion.Amount)
			acc.count++
			if portion.Amount.GreaterThan(acc.max) {
				acc.max = portion.Amount
			}
			if portion.Amount.LessThan(acc.min) {
				acc.min = portion.Amount
			}
			if tx.Date.After(acc.last) {
				acc.last = tx.Date
			}
			if tx.Date.Before(mid) {
				acc.firstHalf = acc.firstHalf.Add(portion.Amount)
			} else {
				acc.secondHalf = acc.secondHalf.Add(portion.Amount)
			}
		}
	}

	categoryIndex := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		categoryIndex[cat.ID] = cat
	}

	result := make([]CategoryPerformance, 0, len(accumulators))
	for key, acc := range accumulators {
		item := CategoryPerformance{
			Name:             UncategorizedName,
			Icon:             UncategorizedIcon,
			Color:            UncategorizedColor,
			TotalSpent:       acc.total,
			TransactionCount: acc.count,
			Average:          acc.total.Div(decimal.NewFromInt(int64(acc.count))),
			Max:              acc.max,
			Min:              acc.min,
			LastTransaction:  acc.last,
		}
		if key != uuid.Nil {
			id := key
			item.CategoryID = &id
			if cat, ok := categoryIndex[key]; ok {
				item.Name = cat.Name
				item.Icon = cat.Icon
				item.Color = cat.Color
			}
		}
		item.ChangePercent, item.Trend = halfSplitTrend(acc.firstHalf, acc.secondHalf, start, end)
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalSpent.Equal(result[j].TotalSpent) {
			return result[i].Name < result[j].Name
		}
		return result[i].TotalSpent.GreaterThan(result[j].TotalSpent)
	})

	return result
}

// AccountStatistics describes activity on one account.
type AccountStatistics struct {
	AccountID          uuid.UUID
	Name               string
	Color              string
	Income             decimal.Decimal
	Expense            decimal.Decimal
	NetFlow            decimal.Decimal
	TransactionCount   int
	AverageTransaction decimal.Decimal // (income + expense) ÷ count
	LargestTransaction decimal.Decimal // largest absolute amount
	LastTransaction    time.Time
}

type accountStatisticsAccumulator struct {
	income  decimal.Decimal
	expense decimal.Decimal
	count   int
	largest decimal.Decimal
	last    time.Time
}

// CalculateAccountStatistics computes per-account income/expense flow
// statistics over the given transactions. Transfers are balance movements
// between own accounts and are not counted. Results are sorted by transaction
// count descending.
func CalculateAccountStatistics(
	transactions []*entity.Transaction,
	accounts []*entity.Account,
) []AccountStatistics {
	accumulators := make(map[uuid.UUID]*accountStatisticsAccumulator)

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeIncome && tx.Type != entity.TransactionTypeExpense {
			continue
		}
		acc, ok := accumulators[tx.AccountID]
		if !ok {
			acc = &accountStatisticsAccumulator{
				income:  decimal.Zero,
				expense: decimal.Zero,
				largest: decimal.Zero,
			}
			accumulators[tx.AccountID] = acc
		}
		if tx.Type == entity.TransactionTypeIncome {
			acc.income = acc.income.Add(tx.Amount)
		} else {
			acc.expense = acc.expense.Add(tx.Amount)
		}
		acc.count++
		if tx.Amount.Abs().GreaterThan(acc.largest) {
			acc.largest = tx.Amount.Abs()
		}
		if tx.Date.After(acc.last) {
			acc.last = tx.Date
		}
	}

	accountIndex := make(map[uuid.UUID]*entity.Account, len(accounts))
	for _, account := range accounts {
		accountIndex[account.ID] = account
	}

	result := make([]AccountStatistics, 0, len(accumulators))
	for id, acc := range accumulators {
		item := AccountStatistics{
			AccountID:          id,
			Name:               UnknownAccountName,
			Income:             acc.income,
			Expense:            acc.expense,
			NetFlow:            acc.income.Sub(acc.expense),
			TransactionCount:   acc.count,
			AverageTransaction: acc.income.Add(acc.expense).Div(decimal.NewFromInt(int64(acc.count))),
			LargestTransaction: acc.largest,
			LastTransaction:    acc.last,
		}
		if account, ok := accountIndex[id]; ok {
			item.Name = account.Name
			item.Color = account.Color
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TransactionCount == result[j].TransactionCount {
			return result[i].Name < result[j].Name
		}
		return result[i].TransactionCount > result[j].TransactionCount
	})

	return result
}
