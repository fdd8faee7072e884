package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// Placeholder records for dangling references. A deleted category, account or
// label still gets a bucket instead of being dropped.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedIcon  = "💰"
	UncategorizedColor = "#6B7280"

	UnknownAccountName = "Unknown Account"
	UnknownLabelName   = "Unknown Label"
)

var hundred = decimal.NewFromInt(100)

// CategorySpending is the aggregate for one category bucket.
type CategorySpending struct {
	CategoryID       *uuid.UUID
	Name             string
	Icon             string
	Color            string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
}

// AccountSpending is the aggregate for one account bucket.
type AccountSpending struct {
	AccountID        uuid.UUID
	Name             string
	Color            string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
}

// LabelSpending is the aggregate for one label bucket.
type LabelSpending struct {
	LabelID          uuid.UUID
	Name             string
	Color            string
	Amount           decimal.Decimal
	Percentage       float64
	TransactionCount int
}

// spendingAccumulator collects running totals for one dimension bucket during
// the fold pass. An explicit record type keeps the aggregation independent of
// map iteration order.
type spendingAccumulator struct {
	amount decimal.Decimal
	count  int
}

// CalculateCategorySpending aggregates transactions of the given type by
// category. Attribution is split-aware: a split transaction contributes each
// split amount to that split's category and its own categoryID/amount are
// ignored. Results are sorted descending by amount; percentages are 0 when the
// total is 0.
func CalculateCategorySpending(
	transactions []*entity.Transaction,
	categories []*entity.Category,
	transactionType entity.TransactionType,
) []CategorySpending {
	accumulators := make(map[uuid.UUID]*spendingAccumulator)
	total := decimal.Zero

	for _, tx := range transactions {
		if tx.Type != transactionType {
			continue
		}
		for _, portion := range tx.CategoryPortions() {
			key := uuid.Nil
			if portion.CategoryID != nil {
				key = *portion.CategoryID
			}
			acc, ok := accumulators[key]
			if !ok {
				acc = &spendingAccumulator{amount: decimal.Zero}
				accumulators[key] = acc
			}
			acc.amount = acc.amount.Add(portion.Amount)
			acc.count++
			total = total.Add(portion.Amount)
		}
	}

	categoryIndex := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		categoryIndex[cat.ID] = cat
	}

	result := make([]CategorySpending, 0, len(accumulators))
	for key, acc := range accumulators {
		item := CategorySpending{
			Name:             UncategorizedName,
			Icon:             UncategorizedIcon,
			Color:            UncategorizedColor,
			Amount:           acc.amount,
			Percentage:       percentageOf(acc.amount, total),
			TransactionCount: acc.count,
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
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount.Equal(result[j].Amount) {
			return result[i].Name < result[j].Name
		}
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	return result
}

// CalculateAccountSpending aggregates transactions of the given type by
// account. Account attribution is intentionally NOT split-aware: splits only
// subdivide category attribution, so the whole transaction amount always
// counts against its accountID.
func CalculateAccountSpending(
	transactions []*entity.Transaction,
	accounts []*entity.Account,
	transactionType entity.TransactionType,
) []AccountSpending {
	accumulators := make(map[uuid.UUID]*spendingAccumulator)
	total := decimal.Zero

	for _, tx := range transactions {
		if tx.Type != transactionType {
			continue
		}
		acc, ok := accumulators[tx.AccountID]
		if !ok {
			acc = &spendingAccumulator{amount: decimal.Zero}
			accumulators[tx.AccountID] = acc
		}
		acc.amount = acc.amount.Add(tx.Amount)
		acc.count++
		total = total.Add(tx.Amount)
	}

	accountIndex := make(map[uuid.UUID]*entity.Account, len(accounts))
	for _, account := range accounts {
		accountIndex[account.ID] = account
	}

	result := make([]AccountSpending, 0, len(accumulators))
	for id, acc := range accumulators {
		item := AccountSpending{
			AccountID:        id,
			Name:             UnknownAccountName,
			Amount:           acc.amount,
			Percentage:       percentageOf(acc.amount, total),
			TransactionCount: acc.count,
		}
		if account, ok := accountIndex[id]; ok {
			item.Name = account.Name
			item.Color = account.Color
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount.Equal(result[j].Amount) {
			return result[i].Name < result[j].Name
		}
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	return result
}

// CalculateLabelSpending aggregates transactions of the given type by label.
// A transaction carrying several labels contributes its full amount to each of
// them. Like accounts, label attribution is NOT split-aware.
func CalculateLabelSpending(
	transactions []*entity.Transaction,
	labels []*entity.Label,
	transactionType entity.TransactionType,
) []LabelSpending {
	accumulators := make(map[uuid.UUID]*spendingAccumulator)
	total := decimal.Zero

	for _, tx := range transactions {
		if tx.Type != transactionType {
			continue
		}
		for _, labelID := range tx.LabelIDs {
			acc, ok := accumulators[labelID]
			if !ok {
				acc = &spendingAccumulator{amount: decimal.Zero}
				accumulators[labelID] = acc
			}
			acc.amount = acc.amount.Add(tx.Amount)
			acc.count++
			total = total.Add(tx.Amount)
		}
	}

	labelIndex := make(map[uuid.UUID]*entity.Label, len(labels))
	for _, label := range labels {
		labelIndex[label.ID] = label
	}

	result := make([]LabelSpending, 0, len(accumulators))
	for id, acc := range accumulators {
		item := LabelSpending{
			LabelID:          id,
			Name:             UnknownLabelName,
			Amount:           acc.amount,
			Percentage:       percentageOf(acc.amount, total),
			TransactionCount: acc.count,
		}
		if label, ok := labelIndex[id]; ok {
			item.Name = label.Name
			item.Color = label.Color
		}
		result = append(result, item)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount.Equal(result[j].Amount) {
			return result[i].Name < result[j].Name
		}
		return result[i].Amount.GreaterThan(result[j].Amount)
	})

	return result
}

// Summary holds overall totals for a set of transactions. Transfers are
// balance-neutral and excluded.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpense     decimal.Decimal
	Net              decimal.Decimal
	SavingsRate      float64 // net / income × 100, 0 when income is 0
	TransactionCount int
}

// CalculateSummary computes income, expense, net and savings rate over the
// given transactions.
func CalculateSummary(transactions []*entity.Transaction) Summary {
	summary := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(tx.Amount)
			summary.TransactionCount++
		case entity.TransactionTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(tx.Amount)
			summary.TransactionCount++
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	summary.SavingsRate = percentageOf(summary.Net, summary.TotalIncome)

	return summary
}

// percentageOf returns amount / total × 100, short-circuiting to 0 when the
// total is 0 so no percentage field can ever be NaN or infinite.
func percentageOf(amount, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := amount.Mul(hundred).Div(total).Float64()
	return pct
}
