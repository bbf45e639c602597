package repository

import (
	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AgencyRepositoryInterface defines the interface for agency repository operations
type AgencyRepositoryInterface interface {
	Create(agency *models.Agency) error
	GetByID(id uuid.UUID) (*models.Agency, error)
	GetByName(name string) (*models.Agency, error)
	GetAll(limit, offset int) ([]models.Agency, int64, error)
	Update(agency *models.Agency) error
	Delete(id uuid.UUID) error
	GetWithBranches(id uuid.UUID) (*models.Agency, error)
}

// BranchRepositoryInterface defines the interface for branch repository operations
type BranchRepositoryInterface interface {
	Create(branch *models.Branch) error
	GetByID(id uuid.UUID) (*models.Branch, error)
	GetByName(name string) (*models.Branch, error)
	GetAll(limit, offset int) ([]models.Branch, int64, error)
	GetByAgencyID(agencyID uuid.UUID, limit, offset int) ([]models.Branch, int64, error)
	Search(query string, limit, offset int) ([]models.Branch, int64, error)
	Update(branch *models.Branch) error
	Delete(id uuid.UUID) error
	GetWithCheckpoints(id uuid.UUID) (*models.Branch, error)
}

// CheckpointRepositoryInterface defines the interface for checkpoint repository operations
type CheckpointRepositoryInterface interface {
	Create(checkpoint *models.Checkpoint) error
	GetByID(id uuid.UUID) (*models.Checkpoint, error)
	GetAll(limit, offset int) ([]models.Checkpoint, int64, error)
	GetByBranchID(branchID uuid.UUID, limit, offset int) ([]models.Checkpoint, int64, error)
	Update(checkpoint *models.Checkpoint) error
	Delete(id uuid.UUID) error
}

// GuardRepositoryInterface defines the interface for guard repository operations
type GuardRepositoryInterface interface {
	Create(guard *models.Guard) error
	GetByID(id uuid.UUID) (*models.Guard, error)
	GetByBadgeNumber(badgeNumber string) (*models.Guard, error)
	GetAll(limit, offset int) ([]models.Guard, int64, error)
	GetByBranchID(branchID uuid.UUID, limit, offset int) ([]models.Guard, int64, error)
	GetActiveByBranchID(branchID uuid.UUID, limit, offset int) ([]models.Guard, int64, error)
	Update(guard *models.Guard) error
	Delete(id uuid.UUID) error
}
