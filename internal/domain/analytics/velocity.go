package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// Trend classifies the direction of a first-half/second-half comparison.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// trendChangeThreshold is the changePercent magnitude beyond which a trend is
// no longer classified as stable.
const trendChangeThreshold = 5.0

// Flat multipliers for projecting a daily average, deliberately not
// calendar-exact.
var (
	seven  = decimal.NewFromInt(7)
	thirty = decimal.NewFromInt(30)
)

// SpendingVelocity describes the average expense rate over a range and its
// first-half/second-half trend.
type SpendingVelocity struct {
	DailyAverage   decimal.Decimal
	WeeklyAverage  decimal.Decimal // daily × 7
	MonthlyAverage decimal.Decimal // daily × 30
	Trend          Trend
	ChangePercent  float64
}

// CalculateSpendingVelocity computes the expense rate over [startDate,
// endDate]. The range is split at its exact midpoint instant; the change
// percent compares each half's daily average and is 0 when the first half's
// average is 0.
func CalculateSpendingVelocity(
	transactions []*entity.Transaction,
	startDate, endDate time.Time,
) SpendingVelocity {
	velocity := SpendingVelocity{
		DailyAverage:   decimal.Zero,
		WeeklyAverage:  decimal.Zero,
		MonthlyAverage: decimal.Zero,
		Trend:          TrendStable,
	}
	if startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return velocity
	}

	start := StartOfDay(startDate)
	end := StartOfDay(endDate)

	totalExpense := decimal.Zero
	for _, tx := range transactions {
		if tx.Type == entity.TransactionTypeExpense && InDayRange(tx.Date, start, end) {
			totalExpense = totalExpense.Add(tx.Amount)
		}
	}

	days := decimal.NewFromInt(int64(DaySpan(start, end)))
	velocity.DailyAverage = totalExpense.Div(days)
	velocity.WeeklyAverage = velocity.DailyAverage.Mul(seven)
	velocity.MonthlyAverage = velocity.DailyAverage.Mul(thirty)

	mid := midpoint(start, EndOfDay(end))
	firstHalf, secondHalf := decimal.Zero, decimal.Zero
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense || !InDayRange(tx.Date, start, end) {
			continue
		}
		if tx.Date.Before(mid) {
			firstHalf = firstHalf.Add(tx.Amount)
		} else {
			secondHalf = secondHalf.Add(tx.Amount)
		}
	}

	velocity.ChangePercent, velocity.Trend = halfSplitTrend(firstHalf, secondHalf, start, EndOfDay(end))

	return velocity
}

// midpoint returns the exact midpoint instant of [start, end].
func midpoint(start, end time.Time) time.Time {
	return start.Add(end.Sub(start) / 2)
}

// halfSplitTrend compares the daily averages of the two halves of [start,
// end] and classifies the change: increasing above +5%, decreasing below -5%,
// stable otherwise. The change percent is 0 when the first half's daily
// average is 0.
func halfSplitTrend(firstHalf, secondHalf decimal.Decimal, start, end time.Time) (float64, Trend) {
	halfDays := end.Sub(start).Hours() / 24 / 2
	if halfDays < 1 {
		halfDays = 1
	}

	firstDaily, _ := firstHalf.Float64()
	secondDaily, _ := secondHalf.Float64()
	firstDaily /= halfDays
	secondDaily /= halfDays

	if firstDaily == 0 {
		return 0, TrendStable
	}

	changePercent := (secondDaily - firstDaily) / firstDaily * 100

	switch {
	case changePercent > trendChangeThreshold:
		return changePercent, TrendIncreasing
	case changePercent < -trendChangeThreshold:
		return changePercent, TrendDecreasing
	default:
		return changePercent, TrendStable
	}
}

// WeekdayCount is the number of transactions falling on one weekday.
type WeekdayCount struct {
	Weekday string
	Count   int
}

// TransactionFrequency describes how often transactions occur.
type TransactionFrequency struct {
	ByWeekday       []WeekdayCount // Sunday-first
	MostActiveDay   string
	TotalCount      int
	AveragePerDay   float64
	AveragePerWeek  float64 // daily × 7
	AveragePerMonth float64 // daily × 30
}

// CalculateTransactionFrequency counts transactions per weekday over the full
// set passed in (no date filtering) and derives per-day/week/month averages
// from the [startDate, endDate] span. The most active day is the weekday with
// the highest count; ties resolve to the earliest weekday in Sunday-first
// order.
func CalculateTransactionFrequency(
	transactions []*entity.Transaction,
	startDate, endDate time.Time,
) TransactionFrequency {
	counts := make(map[time.Weekday]int)
	for _, tx := range transactions {
		if tx.Date.IsZero() {
			continue
		}
		counts[tx.Date.Weekday()]++
	}

	frequency := TransactionFrequency{
		ByWeekday:  make([]WeekdayCount, 0, len(weekdayOrder)),
		TotalCount: len(transactions),
	}

	best := -1
	for _, weekday := range weekdayOrder {
		count := counts[weekday]
		frequency.ByWeekday = append(frequency.ByWeekday, WeekdayCount{
			Weekday: weekday.String(),
			Count:   count,
		})
		if count > best {
			best = count
			frequency.MostActiveDay = weekday.String()
		}
	}

	days := DaySpan(startDate, endDate)
	frequency.AveragePerDay = float64(frequency.TotalCount) / float64(days)
	frequency.AveragePerWeek = frequency.AveragePerDay * 7
	frequency.AveragePerMonth = frequency.AveragePerDay * 30

	return frequency
}
