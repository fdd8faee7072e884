package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindAll retrieves every category.
	FindAll(ctx context.Context) ([]*entity.Category, error)
}
