package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestCalculateSpendingVelocity(t *testing.T) {
	account := uuid.New()

	// 10 days, 100 spent evenly in the first half and 200 in the second.
	ledger := []*entity.Transaction{
		expense(account, nil, "100", date(2024, time.March, 2)),
		expense(account, nil, "200", date(2024, time.March, 9)),
		income(account, nil, "5000", date(2024, time.March, 1)), // ignored by velocity
	}

	got := CalculateSpendingVelocity(ledger, date(2024, time.March, 1), date(2024, time.March, 10))

	requireDecimalEqual(t, "30", got.DailyAverage, "daily average")
	requireDecimalEqual(t, "210", got.WeeklyAverage, "weekly average")
	requireDecimalEqual(t, "900", got.MonthlyAverage, "monthly average")

	// Second half doubled: +100% change, classified increasing.
	requireFloatNear(t, 100, got.ChangePercent, 0.5, "change percent")
	if got.Trend != TrendIncreasing {
		t.Errorf("expected increasing trend, got %s", got.Trend)
	}
}

func TestCalculateSpendingVelocityTrendClassification(t *testing.T) {
	account := uuid.New()
	start := date(2024, time.March, 1)
	end := date(2024, time.March, 10)

	tests := []struct {
		name       string
		firstHalf  string
		secondHalf string
		wantTrend  Trend
	}{
		{"doubling is increasing", "100", "200", TrendIncreasing},
		{"halving is decreasing", "200", "100", TrendDecreasing},
		{"small change is stable", "100", "103", TrendStable},
		{"equal halves are stable", "150", "150", TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := []*entity.Transaction{
				expense(account, nil, tt.firstHalf, date(2024, time.March, 2)),
				expense(account, nil, tt.secondHalf, date(2024, time.March, 9)),
			}
			got := CalculateSpendingVelocity(ledger, start, end)
			if got.Trend != tt.wantTrend {
				t.Errorf("expected %s, got %s (change %.2f%%)", tt.wantTrend, got.Trend, got.ChangePercent)
			}
		})
	}
}

func TestCalculateSpendingVelocityZeroFirstHalf(t *testing.T) {
	account := uuid.New()
	ledger := []*entity.Transaction{
		expense(account, nil, "500", date(2024, time.March, 9)),
	}

	got := CalculateSpendingVelocity(ledger, date(2024, time.March, 1), date(2024, time.March, 10))

	// A zero first half must yield change 0 and stable, never infinity.
	if got.ChangePercent != 0 {
		t.Errorf("expected change percent 0, got %v", got.ChangePercent)
	}
	if got.Trend != TrendStable {
		t.Errorf("expected stable trend, got %s", got.Trend)
	}
}

func TestCalculateSpendingVelocityEmptyRange(t *testing.T) {
	got := CalculateSpendingVelocity(nil, date(2024, time.March, 10), date(2024, time.March, 1))
	requireDecimalEqual(t, "0", got.DailyAverage, "daily average on inverted range")
	if got.Trend != TrendStable {
		t.Errorf("expected stable trend, got %s", got.Trend)
	}
}

func TestCalculateTransactionFrequency(t *testing.T) {
	account := uuid.New()

	// 2024-03-03 is a Sunday, 2024-03-04 a Monday.
	ledger := []*entity.Transaction{
		expense(account, nil, "1", date(2024, time.March, 3)),
		expense(account, nil, "1", date(2024, time.March, 10)),
		expense(account, nil, "1", date(2024, time.March, 4)),
		income(account, nil, "1", date(2024, time.March, 11)),
	}

	got := CalculateTransactionFrequency(ledger, date(2024, time.March, 1), date(2024, time.March, 30))

	if got.TotalCount != 4 {
		t.Errorf("expected total 4, got %d", got.TotalCount)
	}
	if got.MostActiveDay != "Sunday" {
		t.Errorf("expected Sunday, got %s", got.MostActiveDay)
	}

	if len(got.ByWeekday) != 7 {
		t.Fatalf("expected 7 weekday entries, got %d", len(got.ByWeekday))
	}
	if got.ByWeekday[0].Weekday != "Sunday" || got.ByWeekday[0].Count != 2 {
		t.Errorf("expected Sunday-first with count 2, got %+v", got.ByWeekday[0])
	}
	if got.ByWeekday[1].Weekday != "Monday" || got.ByWeekday[1].Count != 2 {
		t.Errorf("expected Monday count 2, got %+v", got.ByWeekday[1])
	}

	requireFloatNear(t, 4.0/30, got.AveragePerDay, 0.0001, "average per day")
	requireFloatNear(t, 4.0/30*7, got.AveragePerWeek, 0.0001, "average per week")
	requireFloatNear(t, 4.0, got.AveragePerMonth, 0.0001, "average per month")
}

func TestCalculateTransactionFrequencyTieBreaksSundayFirst(t *testing.T) {
	account := uuid.New()

	// One Monday and one Sunday transaction: the tie resolves to Sunday
	// because weekdays are enumerated Sunday-first.
	ledger := []*entity.Transaction{
		expense(account, nil, "1", date(2024, time.March, 4)), // Monday
		expense(account, nil, "1", date(2024, time.March, 3)), // Sunday
	}

	got := CalculateTransactionFrequency(ledger, date(2024, time.March, 1), date(2024, time.March, 7))
	if got.MostActiveDay != "Sunday" {
		t.Errorf("expected tie to break to Sunday, got %s", got.MostActiveDay)
	}
}
