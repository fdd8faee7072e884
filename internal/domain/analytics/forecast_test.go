package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

func TestCalculateCategoryTrends(t *testing.T) {
	account := uuid.New()
	dining := uuid.New()
	rent := uuid.New()
	hobby := uuid.New()

	categories := []*entity.Category{
		{ID: dining, Name: "Dining", Icon: "🍜", Color: "#EF4444"},
		{ID: rent, Name: "Rent", Icon: "🏠", Color: "#8B5CF6"},
		{ID: hobby, Name: "Hobby", Icon: "🎮", Color: "#F59E0B"},
	}

	ledger := []*entity.Transaction{
		expense(account, &rent, "900", date(2024, time.January, 1)),
		expense(account, &rent, "900", date(2024, time.February, 1)),
		expense(account, &dining, "100", date(2024, time.January, 10)),
		expense(account, &dining, "250", date(2024, time.February, 15)),
		expense(account, &hobby, "5", date(2024, time.January, 20)),
	}

	got := CalculateCategoryTrends(
		ledger, categories,
		date(2024, time.January, 1), date(2024, time.February, 29),
		GranularityMonthly, 2,
	)

	if len(got) != 2 {
		t.Fatalf("expected top 2 series, got %d", len(got))
	}
	if got[0].Name != "Rent" || got[1].Name != "Dining" {
		t.Fatalf("expected Rent then Dining, got %s then %s", got[0].Name, got[1].Name)
	}

	d := got[1]
	requireDecimalEqual(t, "350", d.TotalSpent, "dining total")
	if len(d.Points) != 2 {
		t.Fatalf("expected one point per month, got %d", len(d.Points))
	}
	if d.Points[0].Period != "2024-01" || d.Points[1].Period != "2024-02" {
		t.Errorf("unexpected period keys: %s, %s", d.Points[0].Period, d.Points[1].Period)
	}
	requireDecimalEqual(t, "100", d.Points[0].Amount, "dining January")
	requireDecimalEqual(t, "250", d.Points[1].Amount, "dining February")
	if d.Trend != TrendIncreasing {
		t.Errorf("expected increasing dining trend, got %s", d.Trend)
	}

	// Rent is flat across both halves: stable.
	if got[0].Trend != TrendStable {
		t.Errorf("expected stable rent trend, got %s", got[0].Trend)
	}
}

func TestCalculateCategoryTrendsCategoriesWithNoSpendGetZeroPoints(t *testing.T) {
	account := uuid.New()
	dining := uuid.New()

	ledger := []*entity.Transaction{
		expense(account, &dining, "40", date(2024, time.March, 3)),
	}

	got := CalculateCategoryTrends(
		ledger, []*entity.Category{{ID: dining, Name: "Dining"}},
		date(2024, time.March, 1), date(2024, time.March, 14),
		GranularityWeekly, 5,
	)

	if len(got) != 1 {
		t.Fatalf("expected 1 series, got %d", len(got))
	}
	if len(got[0].Points) != 2 {
		t.Fatalf("expected 2 weekly points, got %d", len(got[0].Points))
	}
	requireDecimalEqual(t, "40", got[0].Points[0].Amount, "first week")
	requireDecimalEqual(t, "0", got[0].Points[1].Amount, "second week filled with zero")
}

func TestCalculateCategoryTrendsDegenerateInput(t *testing.T) {
	if got := CalculateCategoryTrends(nil, nil, date(2024, time.March, 1), date(2024, time.March, 31), GranularityMonthly, 0); len(got) != 0 {
		t.Errorf("expected empty result for topN=0, got %d", len(got))
	}
	if got := CalculateCategoryTrends(nil, nil, date(2024, time.March, 31), date(2024, time.March, 1), GranularityMonthly, 5); len(got) != 0 {
		t.Errorf("expected empty result for inverted range, got %d", len(got))
	}
}

func TestPredictSpending(t *testing.T) {
	account := uuid.New()

	// Three completed months with varied income/expense, plus the current month
	// which must be excluded from the history.
	ledger := []*entity.Transaction{
		income(account, nil, "3000", date(2024, time.January, 5)),
		expense(account, nil, "1000", date(2024, time.January, 15)),
		income(account, nil, "3000", date(2024, time.February, 5)),
		expense(account, nil, "1200", date(2024, time.February, 15)),
		income(account, nil, "3000", date(2024, time.March, 5)),
		expense(account, nil, "800", date(2024, time.March, 15)),
		expense(account, nil, "9999", date(2024, time.April, 2)), // in-progress month
	}

	got := PredictSpending(ledger, 3, date(2024, time.April, 10))

	if len(got.Forecast) != 3 {
		t.Fatalf("expected 3 forecast months, got %d", len(got.Forecast))
	}
	if got.Forecast[0].Period != "2024-05" {
		t.Errorf("expected forecast to start the month after the current one, got %s", got.Forecast[0].Period)
	}
	if got.Forecast[2].Period != "2024-07" {
		t.Errorf("expected last forecast month 2024-07, got %s", got.Forecast[2].Period)
	}

	first := got.Forecast[0]
	requireDecimalEqual(t, "3000", first.PredictedIncome, "mean income")
	requireDecimalEqual(t, "1000", first.PredictedExpense, "mean expense (1000+1200+800)/3")
	requireDecimalEqual(t, "2000", first.PredictedNet, "predicted net")

	// Income is perfectly flat; expense varies mildly. The averaged CV stays
	// below the high-confidence bound.
	if got.Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence, got %s (cv=%v)", got.Confidence, got.CoefficientOfVariation)
	}
}

func TestPredictSpendingRequiresTwoMonths(t *testing.T) {
	account := uuid.New()

	ledger := []*entity.Transaction{
		expense(account, nil, "500", date(2024, time.March, 10)),
	}

	got := PredictSpending(ledger, 3, date(2024, time.April, 10))

	if len(got.Forecast) != 0 {
		t.Errorf("expected empty forecast with one month of history, got %d entries", len(got.Forecast))
	}
}

func TestPredictSpendingNoCompletedHistory(t *testing.T) {
	account := uuid.New()

	// Everything falls in the in-progress month.
	ledger := []*entity.Transaction{
		expense(account, nil, "500", date(2024, time.April, 1)),
		expense(account, nil, "300", date(2024, time.April, 8)),
	}

	got := PredictSpending(ledger, 2, date(2024, time.April, 10))

	if len(got.Forecast) != 0 {
		t.Errorf("expected empty forecast without completed months, got %d entries", len(got.Forecast))
	}
}

func TestPredictSpendingLowConfidenceOnVolatileHistory(t *testing.T) {
	account := uuid.New()

	ledger := []*entity.Transaction{
		income(account, nil, "50", date(2024, time.February, 5)),
		income(account, nil, "4000", date(2024, time.March, 5)),
		expense(account, nil, "100", date(2024, time.February, 10)),
		expense(account, nil, "2000", date(2024, time.March, 10)),
	}

	got := PredictSpending(ledger, 1, date(2024, time.April, 10))

	if len(got.Forecast) != 1 {
		t.Fatalf("expected 1 forecast month, got %d", len(got.Forecast))
	}
	requireDecimalEqual(t, "1050", got.Forecast[0].PredictedExpense, "mean of the two months")
	if got.Confidence != ConfidenceLow {
		t.Errorf("expected low confidence for volatile history, got %s (cv=%v)", got.Confidence, got.CoefficientOfVariation)
	}
}
