package models

import (
	"github.com/google/uuid"
)

// Checkpoint represents a single guarded post within a branch
type Checkpoint struct {
	BaseModel
	BranchID uuid.UUID      `json:"branch_id" gorm:"type:uuid;not null;index" validate:"required"`
	Kind     CheckpointKind `json:"kind" gorm:"type:varchar(50);not null;default:'gate'"`
	Armed    bool           `json:"armed" gorm:"default:false"` // post requires an armed guard

	// Relationships
	Branch Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Checkpoint
func (Checkpoint) TableName() string {
	return "checkpoints"
}
