package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryTrendPoint is one period's spend for a category.
type CategoryTrendPoint struct {
	Period      string
	PeriodLabel string
	Amount      decimal.Decimal
}

// CategoryTrendSeries is the per-period expense series for one category.
type CategoryTrendSeries struct {
	CategoryID    *uuid.UUID
	Name          string
	Icon          string
	Color         string
	TotalSpent    decimal.Decimal
	Points        []CategoryTrendPoint
	Trend         Trend
	ChangePercent float64
}

// CalculateCategoryTrends builds per-period expense series for the top N
// categories by total spend within [startDate, endDate]. Periods follow the
// same bucketing rules as BucketizeTransactions (weekly or monthly); category
// attribution is split-aware. Each series carries the same
// first-half/second-half trend classification as the spending velocity.
func CalculateCategoryTrends(
	transactions []*entity.Transaction,
	categories []*entity.Category,
	startDate, endDate time.Time,
	granularity Granularity,
	topN int,
) []CategoryTrendSeries {
	if topN <= 0 || !granularity.Valid() ||
		startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return []CategoryTrendSeries{}
	}

	start := StartOfDay(startDate)
	end := EndOfDay(endDate)
	mid := midpoint(start, end)

	// Fold pass: total, half sums and per-period sums per category.
	type trendAccumulator struct {
		total      decimal.Decimal
		firstHalf  decimal.Decimal
		secondHalf decimal.Decimal
		byPeriod   map[string]decimal.Decimal
	}
	accumulators := make(map[uuid.UUID]*trendAccumulator)

	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || !InDayRange(tx.Date, start, end) {
			continue
		}
		periodKey := periodKeyForDate(tx.Date, start, granularity)
		for _, portion := range tx.CategoryPortions() {
			key := uuid.Nil
			if portion.CategoryID != nil {
				key = *portion.CategoryID
			}
			acc, ok := accumulators[key]
			if !ok {
				acc = &trendAccumulator{
					total:      decimal.Zero,
					firstHalf:  decimal.Zero,
					secondHalf: decimal.Zero,
					byPeriod:   make(map[string]decimal.Decimal),
				}
				accumulators[key] = acc
			}
			acc.total = acc.total.Add(portion.Amount)
			acc.byPeriod[periodKey] = acc.byPeriod[periodKey].Add(portion.Amount)
			if tx.Date.Before(mid) {
				acc.firstHalf = acc.firstHalf.Add(portion.Amount)
			} else {
				acc.secondHalf = acc.secondHalf.Add(portion.Amount)
			}
		}
	}

	// Rank categories by total spend and keep the top N.
	type rankedCategory struct {
		id    uuid.UUID
		total decimal.Decimal
	}
	ranked := make([]rankedCategory, 0, len(accumulators))
	for id, acc := range accumulators {
		ranked = append(ranked, rankedCategory{id: id, total: acc.total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total.Equal(ranked[j].total) {
			return ranked[i].id.String() < ranked[j].id.String()
		}
		return ranked[i].total.GreaterThan(ranked[j].total)
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	categoryIndex := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		categoryIndex[cat.ID] = cat
	}

	periods := periodBounds(start, StartOfDay(endDate), granularity)

	result := make([]CategoryTrendSeries, 0, len(ranked))
	for _, rc := range ranked {
		acc := accumulators[rc.id]
		series := CategoryTrendSeries{
			Name:       UncategorizedName,
			Icon:       UncategorizedIcon,
			Color:      UncategorizedColor,
			TotalSpent: acc.total,
			Points:     make([]CategoryTrendPoint, 0, len(periods)),
		}
		if rc.id != uuid.Nil {
			id := rc.id
			series.CategoryID = &id
			if cat, ok := categoryIndex[rc.id]; ok {
				series.Name = cat.Name
				series.Icon = cat.Icon
				series.Color = cat.Color
			}
		}
		for _, p := range periods {
			key := PeriodKey(p.start, granularity)
			amount := acc.byPeriod[key]
			series.Points = append(series.Points, CategoryTrendPoint{
				Period:      key,
				PeriodLabel: PeriodLabel(p.start, p.end, granularity),
				Amount:      amount,
			})
		}
		series.ChangePercent, series.Trend = halfSplitTrend(acc.firstHalf, acc.secondHalf, start, end)
		result = append(result, series)
	}

	return result
}

// periodRange is one bucket's [start, end] day pair.
type periodRange struct {
	start time.Time
	end   time.Time
}

// periodBounds generates the bucket bounds of BucketizeTransactions without
// aggregating anything.
func periodBounds(start, end time.Time, granularity Granularity) []periodRange {
	var periods []periodRange
	cursor := start
	for !cursor.After(end) {
		bucketEnd := bucketEndFor(cursor, granularity)
		if bucketEnd.After(end) {
			bucketEnd = end
		}
		periods = append(periods, periodRange{start: cursor, end: bucketEnd})
		cursor = bucketEnd.AddDate(0, 0, 1)
	}
	return periods
}

// periodKeyForDate maps a transaction date to the key of the bucket containing
// it, for buckets anchored at rangeStart.
func periodKeyForDate(date, rangeStart time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityDaily:
		return date.Format("2006-01-02")
	case GranularityWeekly:
		days := int(StartOfDay(date).Sub(StartOfDay(rangeStart)).Hours() / 24)
		if days < 0 {
			days = 0
		}
		weekStart := StartOfDay(rangeStart).AddDate(0, 0, (days/7)*7)
		return weekStart.Format("2006-01-02")
	default:
		return date.Format("2006-01")
	}
}

// MonthlyForecast is the prediction for one upcoming month.
type MonthlyForecast struct {
	Period           string // "2006-01"
	PeriodLabel      string
	PredictedIncome  decimal.Decimal
	PredictedExpense decimal.Decimal
	PredictedNet     decimal.Decimal
}

// Confidence is the qualitative reliability label of a forecast.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Coefficient-of-variation bounds for confidence classification.
const (
	highConfidenceCV = 0.2
	lowConfidenceCV  = 0.5
)

// minForecastHistory is the minimum number of historical monthly data points
// required before any forecast is produced.
const minForecastHistory = 2

// SpendingPrediction is a flat moving-average forecast with a confidence
// label.
type SpendingPrediction struct {
	Forecast               []MonthlyForecast
	Confidence             Confidence
	CoefficientOfVariation float64
}

// PredictSpending forecasts income and expense for each of the next `months`
// months after asOf, as the plain mean of up to the last 3 completed monthly
// buckets (not time-weighted). Confidence comes from the averaged population
// coefficient of variation of the income and expense series: high below 0.2,
// low above 0.5, medium otherwise. With fewer than 2 historical monthly data
// points the forecast is empty rather than fabricated from a single point.
func PredictSpending(
	transactions []*entity.Transaction,
	months int,
	asOf time.Time,
) SpendingPrediction {
	prediction := SpendingPrediction{Forecast: []MonthlyForecast{}}
	if months <= 0 {
		return prediction
	}

	// Completed months only: the month containing asOf is still in progress.
	currentMonthStart := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	earliest := earliestTransactionDate(transactions)
	if earliest.IsZero() || !earliest.Before(currentMonthStart) {
		return prediction
	}

	lookbackStart := currentMonthStart.AddDate(0, -3, 0)
	earliestMonthStart := time.Date(earliest.Year(), earliest.Month(), 1, 0, 0, 0, 0, earliest.Location())
	if earliestMonthStart.After(lookbackStart) {
		lookbackStart = earliestMonthStart
	}

	history := BucketizeTransactions(
		transactions, lookbackStart, currentMonthStart.AddDate(0, 0, -1), GranularityMonthly,
	)
	if len(history) < minForecastHistory {
		return prediction
	}

	var incomes, expenses []float64
	meanIncome, meanExpense := decimal.Zero, decimal.Zero
	for _, bucket := range history {
		meanIncome = meanIncome.Add(bucket.Income)
		meanExpense = meanExpense.Add(bucket.Expense)
		income, _ := bucket.Income.Float64()
		expense, _ := bucket.Expense.Float64()
		incomes = append(incomes, income)
		expenses = append(expenses, expense)
	}
	bucketCount := decimal.NewFromInt(int64(len(history)))
	meanIncome = meanIncome.Div(bucketCount)
	meanExpense = meanExpense.Div(bucketCount)

	prediction.CoefficientOfVariation = (coefficientOfVariation(incomes) + coefficientOfVariation(expenses)) / 2
	switch {
	case prediction.CoefficientOfVariation < highConfidenceCV:
		prediction.Confidence = ConfidenceHigh
	case prediction.CoefficientOfVariation > lowConfidenceCV:
		prediction.Confidence = ConfidenceLow
	default:
		prediction.Confidence = ConfidenceMedium
	}

	for i := 1; i <= months; i++ {
		monthStart := currentMonthStart.AddDate(0, i, 0)
		prediction.Forecast = append(prediction.Forecast, MonthlyForecast{
			Period:           PeriodKey(monthStart, GranularityMonthly),
			PeriodLabel:      PeriodLabel(monthStart, EndOfMonth(monthStart), GranularityMonthly),
			PredictedIncome:  meanIncome,
			PredictedExpense: meanExpense,
			PredictedNet:     meanIncome.Sub(meanExpense),
		})
	}

	return prediction
}

func earliestTransactionDate(transactions []*entity.Transaction) time.Time {
	var earliest time.Time
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}
	return earliest
}

// coefficientOfVariation returns the population standard deviation divided by
// the mean, or 0 when the mean is 0.
func coefficientOfVariation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return math.Sqrt(variance) / mean
}
