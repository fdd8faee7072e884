package analytics

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TypeAll is the FilterCriteria.Type value that disables type filtering.
const TypeAll = "all"

// FilterCriteria describes an optional predicate per field; absent fields
// impose no constraint and all present criteria are ANDed.
type FilterCriteria struct {
	Type        string // "income", "expense", "transfer"; "all" or empty disables
	AccountIDs  []uuid.UUID
	CategoryIDs []uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	SearchQuery string
}

// FilterTransactions returns the transactions matching every set criterion.
// Category matching is split-aware: a transaction passes when its own category
// or any of its splits' categories is in CategoryIDs. The input slice is never
// modified.
func FilterTransactions(transactions []*entity.Transaction, criteria FilterCriteria) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if matchesCriteria(tx, criteria) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

func matchesCriteria(tx *entity.Transaction, criteria FilterCriteria) bool {
	if criteria.Type != "" && criteria.Type != TypeAll && string(tx.Type) != criteria.Type {
		return false
	}

	if len(criteria.AccountIDs) > 0 && !containsID(criteria.AccountIDs, tx.AccountID) {
		return false
	}

	if len(criteria.CategoryIDs) > 0 && !matchesCategory(tx, criteria.CategoryIDs) {
		return false
	}

	if criteria.StartDate != nil || criteria.EndDate != nil {
		start := time.Time{}
		if criteria.StartDate != nil {
			start = *criteria.StartDate
		}
		end := EndOfDay(time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC))
		if criteria.EndDate != nil {
			end = *criteria.EndDate
		}
		if !InDayRange(tx.Date, start, end) {
			return false
		}
	}

	if criteria.MinAmount != nil && tx.Amount.LessThan(*criteria.MinAmount) {
		return false
	}
	if criteria.MaxAmount != nil && tx.Amount.GreaterThan(*criteria.MaxAmount) {
		return false
	}

	if criteria.SearchQuery != "" && !matchesSearch(tx, criteria.SearchQuery) {
		return false
	}

	return true
}

// matchesCategory checks the transaction's own category and every split's
// category; one matching split is enough even when the primary category does
// not match.
func matchesCategory(tx *entity.Transaction, categoryIDs []uuid.UUID) bool {
	if tx.CategoryID != nil && containsID(categoryIDs, *tx.CategoryID) {
		return true
	}
	for _, split := range tx.Splits {
		if split.CategoryID != nil && containsID(categoryIDs, *split.CategoryID) {
			return true
		}
	}
	return false
}

func matchesSearch(tx *entity.Transaction, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(tx.Description), q) ||
		strings.Contains(strings.ToLower(tx.Notes), q)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
