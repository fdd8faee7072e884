// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. The reporting engine consumes snapshots, so the surface is
// read-oriented; Create exists for seeding and import flows.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindAll retrieves every transaction, with splits and labels loaded.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByDateRange retrieves transactions whose date falls within
	// [startDate, endDate], inclusive at day granularity.
	FindByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*entity.Transaction, error)

	// FindByAccount retrieves all transactions on the given account,
	// including transfers into it.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)
}
