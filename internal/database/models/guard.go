package models

import (
	"github.com/google/uuid"
)

// Guard represents a security guard assignable to checkpoint shifts
type Guard struct {
	BaseModel
	BranchID    *uuid.UUID  `json:"branch_id,omitempty" gorm:"type:uuid;index"`
	AgencyID    *uuid.UUID  `json:"agency_id,omitempty" gorm:"type:uuid;index"`
	BadgeNumber string      `json:"badge_number" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	Phone       string      `json:"phone" gorm:"size:40" validate:"max=40"`
	Status      GuardStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`

	// Relationships
	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:SET NULL"`
	Agency *Agency `json:"agency,omitempty" gorm:"foreignKey:AgencyID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Guard
func (Guard) TableName() string {
	return "guards"
}
