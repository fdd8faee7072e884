package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/report"
)

// BudgetProgressResponse represents one budget's progress.
type BudgetProgressResponse struct {
	ID           string  `json:"id"`
	CategoryID   string  `json:"category_id,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
	Amount       float64 `json:"amount"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Percentage   float64 `json:"percentage"`
	Exceeded     bool    `json:"exceeded"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
}

// BudgetProgressListResponse represents the budget progress API response.
type BudgetProgressListResponse struct {
	Budgets []BudgetProgressResponse `json:"budgets"`
}

// ToBudgetProgressListResponse converts a GetBudgetProgressOutput to its
// response DTO.
func ToBudgetProgressListResponse(output *report.GetBudgetProgressOutput) BudgetProgressListResponse {
	budgets := make([]BudgetProgressResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = BudgetProgressResponse{
			ID:           b.BudgetID.String(),
			CategoryID:   uuidString(b.CategoryID),
			CategoryName: b.CategoryName,
			Amount:       toFloat(b.Amount),
			Spent:        toFloat(b.Spent),
			Remaining:    toFloat(b.Remaining),
			Percentage:   roundPercent(b.Percentage),
			Exceeded:     b.Exceeded,
			PeriodStart:  formatDate(b.PeriodStart),
			PeriodEnd:    formatDate(b.PeriodEnd),
		}
	}
	return BudgetProgressListResponse{Budgets: budgets}
}
