package models

// Agency represents a staffing agency whose guards man branch checkpoints
type Agency struct {
	BaseModel
	ContactEmail string `json:"contact_email" gorm:"size:100" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" gorm:"size:40" validate:"max=40"`

	// Relationships
	Branches []Branch `json:"branches,omitempty" gorm:"foreignKey:AgencyID"`
	Guards   []Guard  `json:"guards,omitempty" gorm:"foreignKey:AgencyID"`
}

// TableName returns the table name for Agency
func (Agency) TableName() string {
	return "agencies"
}
