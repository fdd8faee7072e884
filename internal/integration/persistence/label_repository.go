package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/persistence/model"
)

// labelRepository implements the adapter.LabelRepository interface.
type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new label repository instance.
func NewLabelRepository(db *gorm.DB) adapter.LabelRepository {
	return &labelRepository{
		db: db,
	}
}

// Create creates a new label in the database.
func (r *labelRepository) Create(ctx context.Context, label *entity.Label) error {
	labelModel := model.LabelFromEntity(label)
	result := r.db.WithContext(ctx).Create(labelModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindAll retrieves every label.
func (r *labelRepository) FindAll(ctx context.Context) ([]*entity.Label, error) {
	var labelModels []model.LabelModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&labelModels)
	if result.Error != nil {
		return nil, result.Error
	}

	labels := make([]*entity.Label, len(labelModels))
	for i, lm := range labelModels {
		labels[i] = lm.ToEntity()
	}
	return labels, nil
}
