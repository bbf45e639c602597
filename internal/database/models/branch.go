package models

import (
	"github.com/google/uuid"
)

// Branch represents a guarded site with one or more checkpoints
type Branch struct {
	BaseModel
	AgencyID *uuid.UUID `json:"agency_id,omitempty" gorm:"type:uuid;index"`
	Address  string     `json:"address" gorm:"size:200" validate:"max=200"`
	City     string     `json:"city" gorm:"size:100" validate:"max=100"`
	Timezone string     `json:"timezone" gorm:"size:64"`

	// Relationships
	Agency      *Agency      `json:"agency,omitempty" gorm:"foreignKey:AgencyID;constraint:OnDelete:SET NULL"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty" gorm:"foreignKey:BranchID"`
}

// TableName returns the table name for Branch
func (Branch) TableName() string {
	return "branches"
}
