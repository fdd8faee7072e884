package analytics

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// maxInsights caps the number of generated insight messages. The rule list is
// evaluated in priority order and truncated, never re-sorted.
const maxInsights = 5

// Insight rule thresholds.
const (
	velocityInsightThreshold    = 10.0 // |changePercent| beyond which velocity is mentioned
	topCategoryInsightThreshold = 40.0 // top category share of total spend
	largeExpenseMultiplier      = 2    // multiple of the mean expense that makes a transaction "large"
	excellentSavingsRate        = 20.0
)

// InsightInput carries the computed statistics the insight rules evaluate.
type InsightInput struct {
	Velocity         SpendingVelocity
	CategorySpending []CategorySpending
	AccountStats     []AccountStatistics
	Summary          Summary
	Transactions     []*entity.Transaction
}

// GenerateInsights evaluates a fixed, ordered rule set over precomputed
// statistics and returns at most 5 natural-language summaries. Every rule is
// independent; a rule that does not fire simply contributes nothing.
func GenerateInsights(input InsightInput) []string {
	insights := make([]string, 0, maxInsights)

	// 1. Spending velocity trend.
	if math.Abs(input.Velocity.ChangePercent) > velocityInsightThreshold {
		direction := "up"
		if input.Velocity.ChangePercent < 0 {
			direction = "down"
		}
		insights = append(insights, fmt.Sprintf(
			"Your spending is %s %.0f%% compared to the first half of this period.",
			direction, math.Abs(input.Velocity.ChangePercent),
		))
	}

	// 2. Dominant category.
	if len(input.CategorySpending) > 0 {
		top := input.CategorySpending[0]
		if top.Percentage > topCategoryInsightThreshold {
			insights = append(insights, fmt.Sprintf(
				"%s accounts for %.0f%% of your spending.",
				top.Name, top.Percentage,
			))
		}
	}

	// 3. Busiest account, only meaningful with more than one account.
	if len(input.AccountStats) > 1 {
		busiest := input.AccountStats[0]
		insights = append(insights, fmt.Sprintf(
			"Most of your activity happens on %s (%d transactions).",
			busiest.Name, busiest.TransactionCount,
		))
	}

	// 4. Unusually large expenses.
	if count := countLargeExpenses(input.Transactions); count > 0 {
		plural := ""
		if count > 1 {
			plural = "s"
		}
		insights = append(insights, fmt.Sprintf(
			"You had %d unusually large expense%s this period.", count, plural,
		))
	}

	// 5. Savings rate commentary.
	if input.Summary.SavingsRate > excellentSavingsRate {
		insights = append(insights, fmt.Sprintf(
			"Excellent! You saved %.0f%% of your income.", input.Summary.SavingsRate,
		))
	} else if input.Summary.Net.IsNegative() {
		insights = append(insights, "You spent more than you earned this period.")
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// countLargeExpenses counts expense transactions larger than twice the mean
// expense amount.
func countLargeExpenses(transactions []*entity.Transaction) int {
	total := decimal.Zero
	expenseCount := 0
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeExpense {
			total = total.Add(tx.Amount)
			expenseCount++
		}
	}
	if expenseCount == 0 {
		return 0
	}

	threshold := total.Div(decimal.NewFromInt(int64(expenseCount))).Mul(decimal.NewFromInt(largeExpenseMultiplier))

	count := 0
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeExpense && tx.Amount.GreaterThan(threshold) {
			count++
		}
	}
	return count
}
