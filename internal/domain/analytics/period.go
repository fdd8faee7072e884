package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// PeriodStat is the aggregate for one time bucket.
type PeriodStat struct {
	Period           string // machine-sortable key, e.g. "2024-03"
	PeriodLabel      string
	StartDate        time.Time
	EndDate          time.Time // last calendar day of the bucket, at midnight
	Income           decimal.Decimal
	Expense          decimal.Decimal
	Net              decimal.Decimal
	TransactionCount int
	AveragePerDay    decimal.Decimal // expense ÷ days in the bucket
}

// BucketizeTransactions splits [startDate, endDate] into contiguous,
// non-overlapping buckets of the given granularity and aggregates the
// transactions falling into each. The first bucket starts exactly at
// startDate; a weekly bucket ends 6 days later and a monthly bucket on the
// last day of its calendar month, both clamped to endDate; the next bucket
// starts the day after the previous one ends. Together the buckets cover
// exactly [startDate, endDate] with no gaps.
func BucketizeTransactions(
	transactions []*entity.Transaction,
	startDate, endDate time.Time,
	granularity Granularity,
) []PeriodStat {
	if !granularity.Valid() || startDate.IsZero() || endDate.IsZero() || endDate.Before(startDate) {
		return []PeriodStat{}
	}

	start := StartOfDay(startDate)
	end := StartOfDay(endDate)

	var buckets []PeriodStat
	cursor := start
	for !cursor.After(end) {
		bucketEnd := bucketEndFor(cursor, granularity)
		if bucketEnd.After(end) {
			bucketEnd = end
		}

		buckets = append(buckets, aggregateBucket(transactions, cursor, bucketEnd, granularity))

		cursor = bucketEnd.AddDate(0, 0, 1)
	}

	return buckets
}

// bucketEndFor returns the natural (unclamped) last day of the bucket that
// starts at cursor.
func bucketEndFor(cursor time.Time, granularity Granularity) time.Time {
	switch granularity {
	case GranularityDaily:
		return cursor
	case GranularityWeekly:
		return cursor.AddDate(0, 0, 6)
	default:
		return EndOfMonth(cursor)
	}
}

func aggregateBucket(
	transactions []*entity.Transaction,
	bucketStart, bucketEnd time.Time,
	granularity Granularity,
) PeriodStat {
	stat := PeriodStat{
		Period:      PeriodKey(bucketStart, granularity),
		PeriodLabel: PeriodLabel(bucketStart, bucketEnd, granularity),
		StartDate:   bucketStart,
		EndDate:     bucketEnd,
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
	}

	for _, tx := range transactions {
		if !InDayRange(tx.Date, bucketStart, bucketEnd) {
			continue
		}
		switch tx.Type {
		case entity.TransactionTypeIncome:
			stat.Income = stat.Income.Add(tx.Amount)
			stat.TransactionCount++
		case entity.TransactionTypeExpense:
			stat.Expense = stat.Expense.Add(tx.Amount)
			stat.TransactionCount++
		}
	}

	stat.Net = stat.Income.Sub(stat.Expense)
	stat.AveragePerDay = stat.Expense.Div(decimal.NewFromInt(int64(DaySpan(bucketStart, bucketEnd))))

	return stat
}
