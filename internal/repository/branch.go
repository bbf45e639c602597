package repository

import (
	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create creates a new branch
func (r *BranchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetByName retrieves a branch by name
func (r *BranchRepository) GetByName(name string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetAll retrieves all branches with pagination
func (r *BranchRepository) GetAll(limit, offset int) ([]models.Branch, int64, error) {
	var branches []models.Branch
	var total int64

	if err := r.db.Model(&models.Branch{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&branches).Error
	return branches, total, err
}

// GetByAgencyID retrieves all branches of an agency
func (r *BranchRepository) GetByAgencyID(agencyID uuid.UUID, limit, offset int) ([]models.Branch, int64, error) {
	var branches []models.Branch
	var total int64

	if err := r.db.Model(&models.Branch{}).Where("agency_id = ?", agencyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("agency_id = ?", agencyID).Order("name").Limit(limit).Offset(offset).Find(&branches).Error
	return branches, total, err
}

// Search retrieves branches whose name or title contains the query
func (r *BranchRepository) Search(query string, limit, offset int) ([]models.Branch, int64, error) {
	var branches []models.Branch
	var total int64

	pattern := "%" + query + "%"
	base := r.db.Model(&models.Branch{}).Where("name ILIKE ? OR title ILIKE ?", pattern, pattern)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("name").Limit(limit).Offset(offset).Find(&branches).Error
	return branches, total, err
}

// Update updates a branch
func (r *BranchRepository) Update(branch *models.Branch) error {
	return r.db.Save(branch).Error
}

// Delete deletes a branch by ID
func (r *BranchRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Branch{}, "id = ?", id).Error
}

// GetWithCheckpoints retrieves a branch with its checkpoints preloaded
func (r *BranchRepository) GetWithCheckpoints(id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.Preload("Checkpoints").First(&branch, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}
