package repository

import (
	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgencyRepository handles database operations for agencies
type AgencyRepository struct {
	db *gorm.DB
}

// NewAgencyRepository creates a new agency repository
func NewAgencyRepository(db *gorm.DB) *AgencyRepository {
	return &AgencyRepository{db: db}
}

// Create creates a new agency
func (r *AgencyRepository) Create(agency *models.Agency) error {
	return r.db.Create(agency).Error
}

// GetByID retrieves an agency by ID
func (r *AgencyRepository) GetByID(id uuid.UUID) (*models.Agency, error) {
	var agency models.Agency
	err := r.db.First(&agency, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

// GetByName retrieves an agency by name
func (r *AgencyRepository) GetByName(name string) (*models.Agency, error) {
	var agency models.Agency
	err := r.db.First(&agency, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

// GetAll retrieves all agencies with pagination
func (r *AgencyRepository) GetAll(limit, offset int) ([]models.Agency, int64, error) {
	var agencies []models.Agency
	var total int64

	if err := r.db.Model(&models.Agency{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&agencies).Error
	return agencies, total, err
}

// Update updates an agency
func (r *AgencyRepository) Update(agency *models.Agency) error {
	return r.db.Save(agency).Error
}

// Delete deletes an agency by ID
func (r *AgencyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Agency{}, "id = ?", id).Error
}

// GetWithBranches retrieves an agency with its branches preloaded
func (r *AgencyRepository) GetWithBranches(id uuid.UUID) (*models.Agency, error) {
	var agency models.Agency
	err := r.db.Preload("Branches").First(&agency, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &agency, nil
}
