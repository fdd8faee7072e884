package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindAll retrieves every account.
	FindAll(ctx context.Context) ([]*entity.Account, error)
}
