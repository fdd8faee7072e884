package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// LabelModel represents the labels table in the database.
type LabelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Color     string    `gorm:"type:varchar(7)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the LabelModel.
func (LabelModel) TableName() string {
	return "labels"
}

// ToEntity converts a LabelModel to a domain Label entity.
func (m *LabelModel) ToEntity() *entity.Label {
	return &entity.Label{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// LabelFromEntity creates a LabelModel from a domain Label entity.
func LabelFromEntity(label *entity.Label) *LabelModel {
	return &LabelModel{
		ID:        label.ID,
		Name:      label.Name,
		Color:     label.Color,
		CreatedAt: label.CreatedAt,
		UpdatedAt: label.UpdatedAt,
	}
}
