package service

import (
	"errors"
	"fmt"

	"guard-console-backend/internal/database/models"
	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchService provides branch-related business logic
type BranchService struct {
	repo       repository.BranchRepositoryInterface
	agencyRepo repository.AgencyRepositoryInterface
	validator  *validator.Validate
}

// Ensure BranchService implements BranchServiceInterface
var _ BranchServiceInterface = (*BranchService)(nil)

// NewBranchService creates a new BranchService
func NewBranchService(repo repository.BranchRepositoryInterface, agencyRepo repository.AgencyRepositoryInterface, validator *validator.Validate) *BranchService {
	return &BranchService{
		repo:       repo,
		agencyRepo: agencyRepo,
		validator:  validator,
	}
}

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=40"`
	Title       string     `json:"title" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=200"`
	AgencyID    *uuid.UUID `json:"agency_id,omitempty"`
	Address     string     `json:"address" validate:"max=200"`
	City        string     `json:"city" validate:"max=100"`
	Timezone    string     `json:"timezone" validate:"max=64"`
}

// UpdateBranchRequest represents the request to update a branch
type UpdateBranchRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description,omitempty" validate:"omitempty,max=200"`
	AgencyID    *uuid.UUID `json:"agency_id,omitempty"`
	Address     *string    `json:"address,omitempty" validate:"omitempty,max=200"`
	City        *string    `json:"city,omitempty" validate:"omitempty,max=100"`
	Timezone    *string    `json:"timezone,omitempty" validate:"omitempty,max=64"`
}

// BranchResponse represents a branch in API responses
type BranchResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AgencyID    *uuid.UUID `json:"agency_id,omitempty"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Timezone    string     `json:"timezone"`
}

// BranchListResponse represents a paginated list of branches
type BranchListResponse struct {
	Branches []BranchResponse `json:"branches"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new branch
func (s *BranchService) Create(req *CreateBranchRequest) (*BranchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.AgencyID != nil {
		if _, err := s.agencyRepo.GetByID(*req.AgencyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAgencyNotFound
			}
			return nil, fmt.Errorf("failed to verify agency: %w", err)
		}
	}

	if existing, err := s.repo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrBranchExists
	}

	branch := &models.Branch{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
		},
		AgencyID: req.AgencyID,
		Address:  req.Address,
		City:     req.City,
		Timezone: req.Timezone,
	}

	if err := s.repo.Create(branch); err != nil {
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	response := s.toResponse(branch)
	return &response, nil
}

// GetByID retrieves a branch by ID
func (s *BranchService) GetByID(id uuid.UUID) (*BranchResponse, error) {
	branch, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	response := s.toResponse(branch)
	return &response, nil
}

// GetAll retrieves branches with pagination and an optional substring filter
func (s *BranchService) GetAll(query string, page, pageSize int) (*BranchListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var branches []models.Branch
	var total int64
	var err error
	if query != "" {
		branches, total, err = s.repo.Search(query, pageSize, offset)
	} else {
		branches, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	responses := make([]BranchResponse, len(branches))
	for i, branch := range branches {
		responses[i] = s.toResponse(&branch)
	}

	return &BranchListResponse{
		Branches: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByAgencyID retrieves an agency's branches with pagination
func (s *BranchService) GetByAgencyID(agencyID uuid.UUID, page, pageSize int) (*BranchListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	branches, total, err := s.repo.GetByAgencyID(agencyID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	responses := make([]BranchResponse, len(branches))
	for i, branch := range branches {
		responses[i] = s.toResponse(&branch)
	}

	return &BranchListResponse{
		Branches: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a branch
func (s *BranchService) Update(id uuid.UUID, req *UpdateBranchRequest) (*BranchResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	branch, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	if req.AgencyID != nil {
		if _, err := s.agencyRepo.GetByID(*req.AgencyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrAgencyNotFound
			}
			return nil, fmt.Errorf("failed to verify agency: %w", err)
		}
		branch.AgencyID = req.AgencyID
	}
	if req.Title != nil {
		branch.Title = *req.Title
	}
	if req.Description != nil {
		branch.Description = *req.Description
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.City != nil {
		branch.City = *req.City
	}
	if req.Timezone != nil {
		branch.Timezone = *req.Timezone
	}

	if err := s.repo.Update(branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}

	response := s.toResponse(branch)
	return &response, nil
}

// Delete deletes a branch
func (s *BranchService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBranchNotFound
		}
		return fmt.Errorf("failed to get branch: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}

// toResponse converts a Branch model to API response
func (s *BranchService) toResponse(branch *models.Branch) BranchResponse {
	return BranchResponse{
		ID:          branch.ID,
		Name:        branch.Name,
		Title:       branch.Title,
		Description: branch.Description,
		AgencyID:    branch.AgencyID,
		Address:     branch.Address,
		City:        branch.City,
		Timezone:    branch.Timezone,
	}
}
