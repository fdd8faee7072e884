package dto

import (
	"github.com/pocketledger/backend/internal/application/usecase/report"
)

// PlannedTransactionResponse represents one upcoming planned transaction.
type PlannedTransactionResponse struct {
	ID                 string  `json:"id"`
	AccountID          string  `json:"account_id"`
	CategoryID         string  `json:"category_id,omitempty"`
	Type               string  `json:"type"`
	Amount             float64 `json:"amount"`
	Description        string  `json:"description"`
	NextOccurrenceDate string  `json:"next_occurrence_date"`
}

// UpcomingPlannedResponse represents the upcoming planned API response.
type UpcomingPlannedResponse struct {
	Transactions    []PlannedTransactionResponse `json:"transactions"`
	ExpectedIncome  float64                      `json:"expected_income"`
	ExpectedExpense float64                      `json:"expected_expense"`
}

// ToUpcomingPlannedResponse converts a GetUpcomingPlannedOutput to its
// response DTO.
func ToUpcomingPlannedResponse(output *report.GetUpcomingPlannedOutput) UpcomingPlannedResponse {
	transactions := make([]PlannedTransactionResponse, len(output.Upcoming.Transactions))
	for i, p := range output.Upcoming.Transactions {
		transactions[i] = PlannedTransactionResponse{
			ID:                 p.ID.String(),
			AccountID:          p.AccountID.String(),
			CategoryID:         uuidString(p.CategoryID),
			Type:               string(p.Type),
			Amount:             toFloat(p.Amount),
			Description:        p.Description,
			NextOccurrenceDate: formatDate(p.NextOccurrenceDate),
		}
	}

	return UpcomingPlannedResponse{
		Transactions:    transactions,
		ExpectedIncome:  toFloat(output.Upcoming.ExpectedIncome),
		ExpectedExpense: toFloat(output.Upcoming.ExpectedExpense),
	}
}
