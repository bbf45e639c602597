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

// GuardService provides guard-related business logic
type GuardService struct {
	repo       repository.GuardRepositoryInterface
	branchRepo repository.BranchRepositoryInterface
	validator  *validator.Validate
}

// Ensure GuardService implements GuardServiceInterface
var _ GuardServiceInterface = (*GuardService)(nil)

// NewGuardService creates a new GuardService
func NewGuardService(repo repository.GuardRepositoryInterface, branchRepo repository.BranchRepositoryInterface, validator *validator.Validate) *GuardService {
	return &GuardService{
		repo:       repo,
		branchRepo: branchRepo,
		validator:  validator,
	}
}

// CreateGuardRequest represents the request to create a guard
type CreateGuardRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=40"`
	Title       string             `json:"title" validate:"required,min=1,max=100"`
	BadgeNumber string             `json:"badge_number" validate:"required,max=40"`
	BranchID    *uuid.UUID         `json:"branch_id,omitempty"`
	AgencyID    *uuid.UUID         `json:"agency_id,omitempty"`
	Phone       string             `json:"phone" validate:"max=40"`
	Status      models.GuardStatus `json:"status,omitempty"`
}

// UpdateGuardRequest represents the request to update a guard
type UpdateGuardRequest struct {
	Title    *string             `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	BranchID *uuid.UUID          `json:"branch_id,omitempty"`
	AgencyID *uuid.UUID          `json:"agency_id,omitempty"`
	Phone    *string             `json:"phone,omitempty" validate:"omitempty,max=40"`
	Status   *models.GuardStatus `json:"status,omitempty"`
}

// GuardResponse represents a guard in API responses
type GuardResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Title       string             `json:"title"`
	BadgeNumber string             `json:"badge_number"`
	BranchID    *uuid.UUID         `json:"branch_id,omitempty"`
	AgencyID    *uuid.UUID         `json:"agency_id,omitempty"`
	Phone       string             `json:"phone"`
	Status      models.GuardStatus `json:"status"`
}

// GuardListResponse represents a paginated list of guards
type GuardListResponse struct {
	Guards   []GuardResponse `json:"guards"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new guard
func (s *GuardService) Create(req *CreateGuardRequest) (*GuardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.GuardStatusActive
	}
	if !status.IsValid() {
		return nil, errors.New("invalid guard status")
	}

	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(*req.BranchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBranchNotFound
			}
			return nil, fmt.Errorf("failed to verify branch: %w", err)
		}
	}

	if existing, err := s.repo.GetByBadgeNumber(req.BadgeNumber); err == nil && existing != nil {
		return nil, apperrors.ErrGuardExists
	}

	guard := &models.Guard{
		BaseModel: models.BaseModel{
			Name:  req.Name,
			Title: req.Title,
		},
		BranchID:    req.BranchID,
		AgencyID:    req.AgencyID,
		BadgeNumber: req.BadgeNumber,
		Phone:       req.Phone,
		Status:      status,
	}

	if err := s.repo.Create(guard); err != nil {
		return nil, fmt.Errorf("failed to create guard: %w", err)
	}

	response := s.toResponse(guard)
	return &response, nil
}

// GetByID retrieves a guard by ID
func (s *GuardService) GetByID(id uuid.UUID) (*GuardResponse, error) {
	guard, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGuardNotFound
		}
		return nil, fmt.Errorf("failed to get guard: %w", err)
	}

	response := s.toResponse(guard)
	return &response, nil
}

// GetAll retrieves guards with pagination
func (s *GuardService) GetAll(page, pageSize int) (*GuardListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	guards, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get guards: %w", err)
	}

	return s.toListResponse(guards, total, page, pageSize), nil
}

// GetByBranchID retrieves a branch's guards, optionally only active ones
func (s *GuardService) GetByBranchID(branchID uuid.UUID, activeOnly bool, page, pageSize int) (*GuardListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	var guards []models.Guard
	var total int64
	var err error
	if activeOnly {
		guards, total, err = s.repo.GetActiveByBranchID(branchID, pageSize, offset)
	} else {
		guards, total, err = s.repo.GetByBranchID(branchID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guards: %w", err)
	}

	return s.toListResponse(guards, total, page, pageSize), nil
}

// Update updates a guard
func (s *GuardService) Update(id uuid.UUID, req *UpdateGuardRequest) (*GuardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	guard, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGuardNotFound
		}
		return nil, fmt.Errorf("failed to get guard: %w", err)
	}

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, errors.New("invalid guard status")
		}
		guard.Status = *req.Status
	}
	if req.BranchID != nil {
		if _, err := s.branchRepo.GetByID(*req.BranchID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrBranchNotFound
			}
			return nil, fmt.Errorf("failed to verify branch: %w", err)
		}
		guard.BranchID = req.BranchID
	}
	if req.Title != nil {
		guard.Title = *req.Title
	}
	if req.AgencyID != nil {
		guard.AgencyID = req.AgencyID
	}
	if req.Phone != nil {
		guard.Phone = *req.Phone
	}

	if err := s.repo.Update(guard); err != nil {
		return nil, fmt.Errorf("failed to update guard: %w", err)
	}

	response := s.toResponse(guard)
	return &response, nil
}

// Delete deletes a guard
func (s *GuardService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGuardNotFound
		}
		return fmt.Errorf("failed to get guard: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete guard: %w", err)
	}
	return nil
}

// toResponse converts a Guard model to API response
func (s *GuardService) toResponse(guard *models.Guard) GuardResponse {
	return GuardResponse{
		ID:          guard.ID,
		Name:        guard.Name,
		Title:       guard.Title,
		BadgeNumber: guard.BadgeNumber,
		BranchID:    guard.BranchID,
		AgencyID:    guard.AgencyID,
		Phone:       guard.Phone,
		Status:      guard.Status,
	}
}

func (s *GuardService) toListResponse(guards []models.Guard, total int64, page, pageSize int) *GuardListResponse {
	responses := make([]GuardResponse, len(guards))
	for i, guard := range guards {
		responses[i] = s.toResponse(&guard)
	}
	return &GuardListResponse{
		Guards:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
