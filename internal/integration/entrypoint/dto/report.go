package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/report"
	"github.com/pocketledger/backend/internal/domain/analytics"
)

// DimensionSpendingResponse represents one aggregated spending bucket
// (category, account or label).
type DimensionSpendingResponse struct {
	ID               string  `json:"id,omitempty"`
	Name             string  `json:"name"`
	Icon             string  `json:"icon,omitempty"`
	Color            string  `json:"color,omitempty"`
	Amount           float64 `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// SummaryResponse represents the income/expense summary in the response.
type SummaryResponse struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Net              float64 `json:"net"`
	SavingsRate      float64 `json:"savings_rate"`
	TransactionCount int     `json:"transaction_count"`
}

// SpendingBreakdownResponse represents the spending breakdown API response.
type SpendingBreakdownResponse struct {
	Categories []DimensionSpendingResponse `json:"categories"`
	Accounts   []DimensionSpendingResponse `json:"accounts"`
	Labels     []DimensionSpendingResponse `json:"labels"`
	Summary    SummaryResponse             `json:"summary"`
}

// ToSpendingBreakdownResponse converts a GetSpendingBreakdownOutput to its
// response DTO.
func ToSpendingBreakdownResponse(output *report.GetSpendingBreakdownOutput) SpendingBreakdownResponse {
	categories := make([]DimensionSpendingResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = DimensionSpendingResponse{
			ID:               uuidString(c.CategoryID),
			Name:             c.Name,
			Icon:             c.Icon,
			Color:            c.Color,
			Amount:           toFloat(c.Amount),
			Percentage:       roundPercent(c.Percentage),
			TransactionCount: c.TransactionCount,
		}
	}

	accounts := make([]DimensionSpendingResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = DimensionSpendingResponse{
			ID:               a.AccountID.String(),
			Name:             a.Name,
			Color:            a.Color,
			Amount:           toFloat(a.Amount),
			Percentage:       roundPercent(a.Percentage),
			TransactionCount: a.TransactionCount,
		}
	}

	labels := make([]DimensionSpendingResponse, len(output.Labels))
	for i, l := range output.Labels {
		labels[i] = DimensionSpendingResponse{
			ID:               l.LabelID.String(),
			Name:             l.Name,
			Color:            l.Color,
			Amount:           toFloat(l.Amount),
			Percentage:       roundPercent(l.Percentage),
			TransactionCount: l.TransactionCount,
		}
	}

	return SpendingBreakdownResponse{
		Categories: categories,
		Accounts:   accounts,
		Labels:     labels,
		Summary:    toSummaryResponse(output.Summary),
	}
}

func toSummaryResponse(summary analytics.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:      toFloat(summary.TotalIncome),
		TotalExpense:     toFloat(summary.TotalExpense),
		Net:              toFloat(summary.Net),
		SavingsRate:      roundPercent(summary.SavingsRate),
		TransactionCount: summary.TransactionCount,
	}
}

// PeriodStatResponse represents one time bucket in the trends response.
type PeriodStatResponse struct {
	Period           string  `json:"period"`
	PeriodLabel      string  `json:"period_label"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	Net              float64 `json:"net"`
	TransactionCount int     `json:"transaction_count"`
	AveragePerDay    float64 `json:"average_per_day"`
}

// TrendsResponse represents the trends API response.
type TrendsResponse struct {
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Granularity string               `json:"granularity"`
	Periods     []PeriodStatResponse `json:"periods"`
}

// ToTrendsResponse converts a GetTrendsOutput to its response DTO.
func ToTrendsResponse(output *report.GetTrendsOutput) TrendsResponse {
	periods := make([]PeriodStatResponse, len(output.Periods))
	for i, p := range output.Periods {
		periods[i] = PeriodStatResponse{
			Period:           p.Period,
			PeriodLabel:      p.PeriodLabel,
			StartDate:        formatDate(p.StartDate),
			EndDate:          formatDate(p.EndDate),
			Income:           toFloat(p.Income),
			Expense:          toFloat(p.Expense),
			Net:              toFloat(p.Net),
			TransactionCount: p.TransactionCount,
			AveragePerDay:    toFloat(p.AveragePerDay),
		}
	}

	return TrendsResponse{
		StartDate:   formatDate(output.StartDate),
		EndDate:     formatDate(output.EndDate),
		Granularity: string(output.Granularity),
		Periods:     periods,
	}
}

// VelocityResponse represents the velocity and frequency API response.
type VelocityResponse struct {
	DailyAverage   float64           `json:"daily_average"`
	WeeklyAverage  float64           `json:"weekly_average"`
	MonthlyAverage float64           `json:"monthly_average"`
	Trend          string            `json:"trend"`
	ChangePercent  float64           `json:"change_percent"`
	Frequency      FrequencyResponse `json:"frequency"`
}

// FrequencyResponse represents the transaction frequency section.
type FrequencyResponse struct {
	ByWeekday       []WeekdayCountResponse `json:"by_weekday"`
	MostActiveDay   string                 `json:"most_active_day"`
	TotalCount      int                    `json:"total_count"`
	AveragePerDay   float64                `json:"average_per_day"`
	AveragePerWeek  float64                `json:"average_per_week"`
	AveragePerMonth float64                `json:"average_per_month"`
}

// WeekdayCountResponse represents one weekday's count.
type WeekdayCountResponse struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// ToVelocityResponse converts a GetVelocityOutput to its response DTO.
func ToVelocityResponse(output *report.GetVelocityOutput) VelocityResponse {
	byWeekday := make([]WeekdayCountResponse, len(output.Frequency.ByWeekday))
	for i, wc := range output.Frequency.ByWeekday {
		byWeekday[i] = WeekdayCountResponse{Weekday: wc.Weekday, Count: wc.Count}
	}

	return VelocityResponse{
		DailyAverage:   toFloat(output.Velocity.DailyAverage),
		WeeklyAverage:  toFloat(output.Velocity.WeeklyAverage),
		MonthlyAverage: toFloat(output.Velocity.MonthlyAverage),
		Trend:          string(output.Velocity.Trend),
		ChangePercent:  roundPercent(output.Velocity.ChangePercent),
		Frequency: FrequencyResponse{
			ByWeekday:       byWeekday,
			MostActiveDay:   output.Frequency.MostActiveDay,
			TotalCount:      output.Frequency.TotalCount,
			AveragePerDay:   roundPercent(output.Frequency.AveragePerDay),
			AveragePerWeek:  roundPercent(output.Frequency.AveragePerWeek),
			AveragePerMonth: roundPercent(output.Frequency.AveragePerMonth),
		},
	}
}

// CategoryPerformanceResponse represents one category's performance.
type CategoryPerformanceResponse struct {
	ID               string  `json:"id,omitempty"`
	Name             string  `json:"name"`
	Icon             string  `json:"icon,omitempty"`
	Color            string  `json:"color,omitempty"`
	TotalSpent       float64 `json:"total_spent"`
	TransactionCount int     `json:"transaction_count"`
	Average          float64 `json:"average"`
	Max              float64 `json:"max"`
	Min              float64 `json:"min"`
	LastTransaction  string  `json:"last_transaction"`
	Trend            string  `json:"trend"`
	ChangePercent    float64 `json:"change_percent"`
}

// AccountStatisticsResponse represents one account's statistics.
type AccountStatisticsResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Color              string  `json:"color,omitempty"`
	Income             float64 `json:"income"`
	Expense            float64 `json:"expense"`
	NetFlow            float64 `json:"net_flow"`
	TransactionCount   int     `json:"transaction_count"`
	AverageTransaction float64 `json:"average_transaction"`
	LargestTransaction float64 `json:"largest_transaction"`
	LastTransaction    string  `json:"last_transaction"`
}

// PerformanceResponse represents the performance API response.
type PerformanceResponse struct {
	Categories []CategoryPerformanceResponse `json:"categories"`
	Accounts   []AccountStatisticsResponse   `json:"accounts"`
}

// ToPerformanceResponse converts a GetPerformanceOutput to its response DTO.
func ToPerformanceResponse(output *report.GetPerformanceOutput) PerformanceResponse {
	categories := make([]CategoryPerformanceResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryPerformanceResponse{
			ID:               uuidString(c.CategoryID),
			Name:             c.Name,
			Icon:             c.Icon,
			Color:            c.Color,
			TotalSpent:       toFloat(c.TotalSpent),
			TransactionCount: c.TransactionCount,
			Average:          toFloat(c.Average),
			Max:              toFloat(c.Max),
			Min:              toFloat(c.Min),
			LastTransaction:  formatDate(c.LastTransaction),
			Trend:            string(c.Trend),
			ChangePercent:    roundPercent(c.ChangePercent),
		}
	}

	accounts := make([]AccountStatisticsResponse, len(output.Accounts))
	for i, a := range output.Accounts {
		accounts[i] = AccountStatisticsResponse{
			ID:                 a.AccountID.String(),
			Name:               a.Name,
			Color:              a.Color,
			Income:             toFloat(a.Income),
			Expense:            toFloat(a.Expense),
			NetFlow:            toFloat(a.NetFlow),
			TransactionCount:   a.TransactionCount,
			AverageTransaction: toFloat(a.AverageTransaction),
			LargestTransaction: toFloat(a.LargestTransaction),
			LastTransaction:    formatDate(a.LastTransaction),
		}
	}

	return PerformanceResponse{Categories: categories, Accounts: accounts}
}

// PeriodTotalsResponse represents one comparison window's totals.
type PeriodTotalsResponse struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	Net              float64 `json:"net"`
	TransactionCount int     `json:"transaction_count"`
}

// ComparisonResponse represents the year-over-year comparison API response.
type ComparisonResponse struct {
	Current              PeriodTotalsResponse `json:"current"`
	Previous             PeriodTotalsResponse `json:"previous"`
	IncomeChange         float64              `json:"income_change"`
	ExpenseChange        float64              `json:"expense_change"`
	NetChange            float64              `json:"net_change"`
	IncomeChangePercent  float64              `json:"income_change_percent"`
	ExpenseChangePercent float64              `json:"expense_change_percent"`
	NetChangePercent     float64              `json:"net_change_percent"`
}

// ToComparisonResponse converts a GetComparisonOutput to its response DTO.
func ToComparisonResponse(output *report.GetComparisonOutput) ComparisonResponse {
	cmp := output.Comparison
	return ComparisonResponse{
		Current: PeriodTotalsResponse{
			StartDate:        formatDate(cmp.CurrentStart),
			EndDate:          formatDate(cmp.CurrentEnd),
			Income:           toFloat(cmp.CurrentPeriod.Income),
			Expense:          toFloat(cmp.CurrentPeriod.Expense),
			Net:              toFloat(cmp.CurrentPeriod.Net),
			TransactionCount: cmp.CurrentPeriod.TransactionCount,
		},
		Previous: PeriodTotalsResponse{
			StartDate:        formatDate(cmp.PreviousStart),
			EndDate:          formatDate(cmp.PreviousEnd),
			Income:           toFloat(cmp.PreviousPeriod.Income),
			Expense:          toFloat(cmp.PreviousPeriod.Expense),
			Net:              toFloat(cmp.PreviousPeriod.Net),
			TransactionCount: cmp.PreviousPeriod.TransactionCount,
		},
		IncomeChange:         toFloat(cmp.IncomeChange),
		ExpenseChange:        toFloat(cmp.ExpenseChange),
		NetChange:            toFloat(cmp.NetChange),
		IncomeChangePercent:  roundPercent(cmp.IncomeChangePercent),
		ExpenseChangePercent: roundPercent(cmp.ExpenseChangePercent),
		NetChangePercent:     roundPercent(cmp.NetChangePercent),
	}
}

// BalancePointResponse represents one reconstructed balance point.
type BalancePointResponse struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// BalanceTrendResponse represents the balance trend API response.
type BalanceTrendResponse struct {
	Points []BalancePointResponse `json:"points"`
}

// ToBalanceTrendResponse converts a GetBalanceTrendOutput to its response DTO.
func ToBalanceTrendResponse(output *report.GetBalanceTrendOutput) BalanceTrendResponse {
	points := make([]BalancePointResponse, len(output.Points))
	for i, p := range output.Points {
		points[i] = BalancePointResponse{
			Date:    formatDate(p.Date),
			Balance: toFloat(p.Balance),
		}
	}
	return BalanceTrendResponse{Points: points}
}

// CategoryTrendPointResponse represents one period's spend for a category.
type CategoryTrendPointResponse struct {
	Period      string  `json:"period"`
	PeriodLabel string  `json:"period_label"`
	Amount      float64 `json:"amount"`
}

// CategoryTrendSeriesResponse represents one category's spend series.
type CategoryTrendSeriesResponse struct {
	ID            string                       `json:"id,omitempty"`
	Name          string                       `json:"name"`
	Icon          string                       `json:"icon,omitempty"`
	Color         string                       `json:"color,omitempty"`
	TotalSpent    float64                      `json:"total_spent"`
	Points        []CategoryTrendPointResponse `json:"points"`
	Trend         string                       `json:"trend"`
	ChangePercent float64                      `json:"change_percent"`
}

// CategoryTrendsResponse represents the category trends API response.
type CategoryTrendsResponse struct {
	StartDate   string                        `json:"start_date"`
	EndDate     string                        `json:"end_date"`
	Granularity string                        `json:"granularity"`
	Series      []CategoryTrendSeriesResponse `json:"series"`
}

// ToCategoryTrendsResponse converts a GetCategoryTrendsOutput to its response
// DTO.
func ToCategoryTrendsResponse(output *report.GetCategoryTrendsOutput) CategoryTrendsResponse {
	series := make([]CategoryTrendSeriesResponse, len(output.Series))
	for i, s := range output.Series {
		points := make([]CategoryTrendPointResponse, len(s.Points))
		for j, p := range s.Points {
			points[j] = CategoryTrendPointResponse{
				Period:      p.Period,
				PeriodLabel: p.PeriodLabel,
				Amount:      toFloat(p.Amount),
			}
		}
		series[i] = CategoryTrendSeriesResponse{
			ID:            uuidString(s.CategoryID),
			Name:          s.Name,
			Icon:          s.Icon,
			Color:         s.Color,
			TotalSpent:    toFloat(s.TotalSpent),
			Points:        points,
			Trend:         string(s.Trend),
			ChangePercent: roundPercent(s.ChangePercent),
		}
	}

	return CategoryTrendsResponse{
		StartDate:   formatDate(output.StartDate),
		EndDate:     formatDate(output.EndDate),
		Granularity: string(output.Granularity),
		Series:      series,
	}
}

// MonthlyForecastResponse represents one forecast month.
type MonthlyForecastResponse struct {
	Period           string  `json:"period"`
	PeriodLabel      string  `json:"period_label"`
	PredictedIncome  float64 `json:"predicted_income"`
	PredictedExpense float64 `json:"predicted_expense"`
	PredictedNet     float64 `json:"predicted_net"`
}

// ForecastResponse represents the forecast API response.
type ForecastResponse struct {
	Forecast               []MonthlyForecastResponse `json:"forecast"`
	Confidence             string                    `json:"confidence,omitempty"`
	CoefficientOfVariation float64                   `json:"coefficient_of_variation"`
}

// ToForecastResponse converts a GetForecastOutput to its response DTO.
func ToForecastResponse(output *report.GetForecastOutput) ForecastResponse {
	forecast := make([]MonthlyForecastResponse, len(output.Prediction.Forecast))
	for i, m := range output.Prediction.Forecast {
		forecast[i] = MonthlyForecastResponse{
			Period:           m.Period,
			PeriodLabel:      m.PeriodLabel,
			PredictedIncome:  toFloat(m.PredictedIncome),
			PredictedExpense: toFloat(m.PredictedExpense),
			PredictedNet:     toFloat(m.PredictedNet),
		}
	}

	return ForecastResponse{
		Forecast:               forecast,
		Confidence:             string(output.Prediction.Confidence),
		CoefficientOfVariation: roundPercent(output.Prediction.CoefficientOfVariation),
	}
}

// InsightsResponse represents the insights API response.
type InsightsResponse struct {
	Insights []string `json:"insights"`
}

// ToInsightsResponse converts a GetInsightsOutput to its response DTO.
func ToInsightsResponse(output *report.GetInsightsOutput) InsightsResponse {
	return InsightsResponse{Insights: output.Insights}
}
