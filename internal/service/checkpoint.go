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

// CheckpointService provides checkpoint-related business logic
type CheckpointService struct {
	repo       repository.CheckpointRepositoryInterface
	branchRepo repository.BranchRepositoryInterface
	validator  *validator.Validate
}

// Ensure CheckpointService implements CheckpointServiceInterface
var _ CheckpointServiceInterface = (*CheckpointService)(nil)

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(repo repository.CheckpointRepositoryInterface, branchRepo repository.BranchRepositoryInterface, validator *validator.Validate) *CheckpointService {
	return &CheckpointService{
		repo:       repo,
		branchRepo: branchRepo,
		validator:  validator,
	}
}

// CreateCheckpointRequest represents the request to create a checkpoint
type CreateCheckpointRequest struct {
	Name        string                `json:"name" validate:"required,min=1,max=40"`
	Title       string                `json:"title" validate:"required,min=1,max=100"`
	Description string                `json:"description" validate:"max=200"`
	BranchID    uuid.UUID             `json:"branch_id" validate:"required"`
	Kind        models.CheckpointKind `json:"kind,omitempty"`
	Armed       bool                  `json:"armed"`
}

// UpdateCheckpointRequest represents the request to update a checkpoint
type UpdateCheckpointRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=200"`
	Kind        *models.CheckpointKind `json:"kind,omitempty"`
	Armed       *bool                  `json:"armed,omitempty"`
}

// CheckpointResponse represents a checkpoint in API responses
type CheckpointResponse struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	BranchID    uuid.UUID             `json:"branch_id"`
	Kind        models.CheckpointKind `json:"kind"`
	Armed       bool                  `json:"armed"`
}

// CheckpointListResponse represents a paginated list of checkpoints
type CheckpointListResponse struct {
	Checkpoints []CheckpointResponse `json:"checkpoints"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new checkpoint
func (s *CheckpointService) Create(req *CreateCheckpointRequest) (*CheckpointResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	kind := req.Kind
	if kind == "" {
		kind = models.CheckpointKindGate
	}
	if !kind.IsValid() {
		return nil, errors.New("invalid checkpoint kind")
	}

	if _, err := s.branchRepo.GetByID(req.BranchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to verify branch: %w", err)
	}

	checkpoint := &models.Checkpoint{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
		},
		BranchID: req.BranchID,
		Kind:     kind,
		Armed:    req.Armed,
	}

	if err := s.repo.Create(checkpoint); err != nil {
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}

	response := s.toResponse(checkpoint)
	return &response, nil
}

// GetByID retrieves a checkpoint by ID
func (s *CheckpointService) GetByID(id uuid.UUID) (*CheckpointResponse, error) {
	checkpoint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCheckpointNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	response := s.toResponse(checkpoint)
	return &response, nil
}

// GetByBranchID retrieves a branch's checkpoints with pagination
func (s *CheckpointService) GetByBranchID(branchID uuid.UUID, page, pageSize int) (*CheckpointListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	checkpoints, total, err := s.repo.GetByBranchID(branchID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkpoints: %w", err)
	}

	responses := make([]CheckpointResponse, len(checkpoints))
	for i, checkpoint := range checkpoints {
		responses[i] = s.toResponse(&checkpoint)
	}

	return &CheckpointListResponse{
		Checkpoints: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a checkpoint
func (s *CheckpointService) Update(id uuid.UUID, req *UpdateCheckpointRequest) (*CheckpointResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	checkpoint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCheckpointNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	if req.Kind != nil {
		if !req.Kind.IsValid() {
			return nil, errors.New("invalid checkpoint kind")
		}
		checkpoint.Kind = *req.Kind
	}
	if req.Title != nil {
		checkpoint.Title = *req.Title
	}
	if req.Description != nil {
		checkpoint.Description = *req.Description
	}
	if req.Armed != nil {
		checkpoint.Armed = *req.Armed
	}

	if err := s.repo.Update(checkpoint); err != nil {
		return nil, fmt.Errorf("failed to update checkpoint: %w", err)
	}

	response := s.toResponse(checkpoint)
	return &response, nil
}

// Delete deletes a checkpoint
func (s *CheckpointService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCheckpointNotFound
		}
		return fmt.Errorf("failed to get checkpoint: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}

// toResponse converts a Checkpoint model to API response
func (s *CheckpointService) toResponse(checkpoint *models.Checkpoint) CheckpointResponse {
	return CheckpointResponse{
		ID:          checkpoint.ID,
		Name:        checkpoint.Name,
		Title:       checkpoint.Title,
		Description: checkpoint.Description,
		BranchID:    checkpoint.BranchID,
		Kind:        checkpoint.Kind,
		Armed:       checkpoint.Armed,
	}
}
