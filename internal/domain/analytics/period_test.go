package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestBucketizeTransactionsMonthly(t *testing.T) {
	account := uuid.New()
	ledger := []*entity.Transaction{
		income(account, nil, "1000", date(2024, time.January, 5)),
		expense(account, nil, "300", date(2024, time.January, 20)),
		expense(account, nil, "145", date(2024, time.February, 10)),
	}

	got := BucketizeTransactions(ledger, date(2024, time.January, 1), date(2024, time.March, 31), GranularityMonthly)

	if len(got) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(got))
	}

	if got[0].Period != "2024-01" || got[1].Period != "2024-02" || got[2].Period != "2024-03" {
		t.Errorf("unexpected period keys: %s %s %s", got[0].Period, got[1].Period, got[2].Period)
	}
	if got[0].PeriodLabel != "Jan 2024" {
		t.Errorf("expected label Jan 2024, got %s", got[0].PeriodLabel)
	}

	requireDecimalEqual(t, "1000", got[0].Income, "january income")
	requireDecimalEqual(t, "300", got[0].Expense, "january expense")
	requireDecimalEqual(t, "700", got[0].Net, "january net")
	if got[0].TransactionCount != 2 {
		t.Errorf("expected 2 transactions in january, got %d", got[0].TransactionCount)
	}

	requireDecimalEqual(t, "145", got[1].Expense, "february expense")
	requireDecimalEqual(t, "0", got[2].Income, "empty march income")
	requireDecimalEqual(t, "0", got[2].Expense, "empty march expense")

	// averagePerDay = expense ÷ days in the bucket (january has 31).
	want := dec("300").Div(dec("31"))
	if !got[0].AveragePerDay.Equal(want) {
		t.Errorf("expected averagePerDay %s, got %s", want, got[0].AveragePerDay)
	}
}

func TestBucketizeTransactionsContiguousCoverage(t *testing.T) {
	tests := []struct {
		name        string
		start       time.Time
		end         time.Time
		granularity Granularity
	}{
		{"daily over a week", date(2024, time.March, 1), date(2024, time.March, 7), GranularityDaily},
		{"weekly mid-week start", date(2024, time.March, 6), date(2024, time.April, 20), GranularityWeekly},
		{"monthly mid-month start", date(2024, time.January, 15), date(2024, time.April, 10), GranularityMonthly},
		{"monthly over a leap february", date(2024, time.February, 1), date(2024, time.March, 31), GranularityMonthly},
		{"single day", date(2024, time.June, 15), date(2024, time.June, 15), GranularityWeekly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketizeTransactions(nil, tt.start, tt.end, tt.granularity)
			if len(got) == 0 {
				t.Fatal("expected at least one bucket")
			}

			if !got[0].StartDate.Equal(tt.start) {
				t.Errorf("first bucket starts at %s, expected %s", got[0].StartDate, tt.start)
			}
			if !got[len(got)-1].EndDate.Equal(tt.end) {
				t.Errorf("last bucket ends at %s, expected %s", got[len(got)-1].EndDate, tt.end)
			}

			for i := 1; i < len(got); i++ {
				expectedStart := got[i-1].EndDate.AddDate(0, 0, 1)
				if !got[i].StartDate.Equal(expectedStart) {
					t.Errorf("bucket %d starts at %s, expected %s (gap or overlap)",
						i, got[i].StartDate, expectedStart)
				}
				if got[i].Period <= got[i-1].Period {
					t.Errorf("period keys not strictly ordered: %s then %s", got[i-1].Period, got[i].Period)
				}
			}
		})
	}
}

func TestBucketizeTransactionsLeapFebruary(t *testing.T) {
	got := BucketizeTransactions(nil, date(2024, time.February, 1), date(2024, time.February, 29), GranularityMonthly)
	if len(got) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(got))
	}
	if !got[0].EndDate.Equal(date(2024, time.February, 29)) {
		t.Errorf("expected leap february to end on the 29th, got %s", got[0].EndDate)
	}
}

func TestBucketizeTransactionsDegenerateInputs(t *testing.T) {
	tests := []struct {
		name        string
		start       time.Time
		end         time.Time
		granularity Granularity
	}{
		{"end before start", date(2024, time.March, 10), date(2024, time.March, 1), GranularityDaily},
		{"zero start", time.Time{}, date(2024, time.March, 1), GranularityDaily},
		{"invalid granularity", date(2024, time.March, 1), date(2024, time.March, 10), Granularity("hourly")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketizeTransactions(nil, tt.start, tt.end, tt.granularity)
			if len(got) != 0 {
				t.Errorf("expected empty result, got %d buckets", len(got))
			}
		})
	}
}

func TestBucketizeTransactionsWeeklyClamping(t *testing.T) {
	// 10 days of range: one full week then a clamped 3-day bucket.
	account := uuid.New()
	ledger := []*entity.Transaction{
		expense(account, nil, "70", date(2024, time.March, 3)),
		expense(account, nil, "30", date(2024, time.March, 9)),
	}

	got := BucketizeTransactions(ledger, date(2024, time.March, 1), date(2024, time.March, 10), GranularityWeekly)

	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(got))
	}
	requireDecimalEqual(t, "70", got[0].Expense, "first week expense")
	requireDecimalEqual(t, "30", got[1].Expense, "clamped bucket expense")

	// Clamped bucket spans March 8-10: average over 3 days, not 7.
	requireDecimalEqual(t, "10", got[1].AveragePerDay, "clamped averagePerDay")
}
