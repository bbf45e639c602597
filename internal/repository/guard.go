package repository

import (
	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardRepository handles database operations for guards
type GuardRepository struct {
	db *gorm.DB
}

// NewGuardRepository creates a new guard repository
func NewGuardRepository(db *gorm.DB) *GuardRepository {
	return &GuardRepository{db: db}
}

// Create creates a new guard
func (r *GuardRepository) Create(guard *models.Guard) error {
	return r.db.Create(guard).Error
}

// GetByID retrieves a guard by ID
func (r *GuardRepository) GetByID(id uuid.UUID) (*models.Guard, error) {
	var guard models.Guard
	err := r.db.First(&guard, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &guard, nil
}

// GetByBadgeNumber retrieves a guard by badge number
func (r *GuardRepository) GetByBadgeNumber(badgeNumber string) (*models.Guard, error) {
	var guard models.Guard
	err := r.db.First(&guard, "badge_number = ?", badgeNumber).Error
	if err != nil {
		return nil, err
	}
	return &guard, nil
}

// GetAll retrieves all guards with pagination
func (r *GuardRepository) GetAll(limit, offset int) ([]models.Guard, int64, error) {
	var guards []models.Guard
	var total int64

	if err := r.db.Model(&models.Guard{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&guards).Error
	return guards, total, err
}

// GetByBranchID retrieves all guards assigned to a branch
func (r *GuardRepository) GetByBranchID(branchID uuid.UUID, limit, offset int) ([]models.Guard, int64, error) {
	var guards []models.Guard
	var total int64

	if err := r.db.Model(&models.Guard{}).Where("branch_id = ?", branchID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("branch_id = ?", branchID).Order("name").Limit(limit).Offset(offset).Find(&guards).Error
	return guards, total, err
}

// GetActiveByBranchID retrieves a branch's guards with active status
func (r *GuardRepository) GetActiveByBranchID(branchID uuid.UUID, limit, offset int) ([]models.Guard, int64, error) {
	var guards []models.Guard
	var total int64

	base := r.db.Model(&models.Guard{}).Where("branch_id = ? AND status = ?", branchID, models.GuardStatusActive)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("name").Limit(limit).Offset(offset).Find(&guards).Error
	return guards, total, err
}

// Update updates a guard
func (r *GuardRepository) Update(guard *models.Guard) error {
	return r.db.Save(guard).Error
}

// Delete deletes a guard by ID
func (r *GuardRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Guard{}, "id = ?", id).Error
}
