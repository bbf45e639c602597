package repository

import (
	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckpointRepository handles database operations for checkpoints
type CheckpointRepository struct {
	db *gorm.DB
}

// NewCheckpointRepository creates a new checkpoint repository
func NewCheckpointRepository(db *gorm.DB) *CheckpointRepository {
	return &CheckpointRepository{db: db}
}

// Create creates a new checkpoint
func (r *CheckpointRepository) Create(checkpoint *models.Checkpoint) error {
	return r.db.Create(checkpoint).Error
}

// GetByID retrieves a checkpoint by ID
func (r *CheckpointRepository) GetByID(id uuid.UUID) (*models.Checkpoint, error) {
	var checkpoint models.Checkpoint
	err := r.db.First(&checkpoint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}

// GetAll retrieves all checkpoints with pagination
func (r *CheckpointRepository) GetAll(limit, offset int) ([]models.Checkpoint, int64, error) {
	var checkpoints []models.Checkpoint
	var total int64

	if err := r.db.Model(&models.Checkpoint{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&checkpoints).Error
	return checkpoints, total, err
}

// GetByBranchID retrieves all checkpoints of a branch
func (r *CheckpointRepository) GetByBranchID(branchID uuid.UUID, limit, offset int) ([]models.Checkpoint, int64, error) {
	var checkpoints []models.Checkpoint
	var total int64

	if err := r.db.Model(&models.Checkpoint{}).Where("branch_id = ?", branchID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("branch_id = ?", branchID).Order("name").Limit(limit).Offset(offset).Find(&checkpoints).Error
	return checkpoints, total, err
}

// Update updates a checkpoint
func (r *CheckpointRepository) Update(checkpoint *models.Checkpoint) error {
	return r.db.Save(checkpoint).Error
}

// Delete deletes a checkpoint by ID
func (r *CheckpointRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Checkpoint{}, "id = ?", id).Error
}
