package adapter

import (
	"context"
	"time"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// PlannedTransactionRepository defines the interface for planned transaction
// persistence operations.
type PlannedTransactionRepository interface {
	// Create creates a new planned transaction in the database.
	Create(ctx context.Context, planned *entity.PlannedTransaction) error

	// FindPendingInWindow retrieves pending planned transactions whose next
	// occurrence falls within [from, to].
	FindPendingInWindow(ctx context.Context, from, to time.Time) ([]*entity.PlannedTransaction, error)
}
