package adapter

import (
	"context"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// LabelRepository defines the interface for label persistence operations.
type LabelRepository interface {
	// Create creates a new label in the database.
	Create(ctx context.Context, label *entity.Label) error

	// FindAll retrieves every label.
	FindAll(ctx context.Context) ([]*entity.Label, error)
}
