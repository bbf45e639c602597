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

// AgencyService provides agency-related business logic
type AgencyService struct {
	repo      repository.AgencyRepositoryInterface
	validator *validator.Validate
}

// Ensure AgencyService implements AgencyServiceInterface
var _ AgencyServiceInterface = (*AgencyService)(nil)

// NewAgencyService creates a new AgencyService
func NewAgencyService(repo repository.AgencyRepositoryInterface, validator *validator.Validate) *AgencyService {
	return &AgencyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAgencyRequest represents the request to create an agency
type CreateAgencyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=40"`
	Title        string `json:"title" validate:"required,min=1,max=100"`
	Description  string `json:"description" validate:"max=200"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"max=40"`
}

// UpdateAgencyRequest represents the request to update an agency
type UpdateAgencyRequest struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=200"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=40"`
}

// AgencyResponse represents an agency in API responses
type AgencyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
}

// AgencyListResponse represents a paginated list of agencies
type AgencyListResponse struct {
	Agencies []AgencyResponse `json:"agencies"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new agency
func (s *AgencyService) Create(req *CreateAgencyRequest) (*AgencyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrAgencyExists
	}

	agency := &models.Agency{
		BaseModel: models.BaseModel{
			Name:        req.Name,
			Title:       req.Title,
			Description: req.Description,
		},
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}

	if err := s.repo.Create(agency); err != nil {
		return nil, fmt.Errorf("failed to create agency: %w", err)
	}

	response := s.toResponse(agency)
	return &response, nil
}

// GetByID retrieves an agency by ID
func (s *AgencyService) GetByID(id uuid.UUID) (*AgencyResponse, error) {
	agency, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	response := s.toResponse(agency)
	return &response, nil
}

// GetAll retrieves agencies with pagination
func (s *AgencyService) GetAll(page, pageSize int) (*AgencyListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	agencies, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get agencies: %w", err)
	}

	responses := make([]AgencyResponse, len(agencies))
	for i, agency := range agencies {
		responses[i] = s.toResponse(&agency)
	}

	return &AgencyListResponse{
		Agencies: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates an agency
func (s *AgencyService) Update(id uuid.UUID, req *UpdateAgencyRequest) (*AgencyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	agency, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgencyNotFound
		}
		return nil, fmt.Errorf("failed to get agency: %w", err)
	}

	if req.Title != nil {
		agency.Title = *req.Title
	}
	if req.Description != nil {
		agency.Description = *req.Description
	}
	if req.ContactEmail != nil {
		agency.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		agency.ContactPhone = *req.ContactPhone
	}

	if err := s.repo.Update(agency); err != nil {
		return nil, fmt.Errorf("failed to update agency: %w", err)
	}

	response := s.toResponse(agency)
	return &response, nil
}

// Delete deletes an agency
func (s *AgencyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgencyNotFound
		}
		return fmt.Errorf("failed to get agency: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete agency: %w", err)
	}
	return nil
}

// toResponse converts an Agency model to API response
func (s *AgencyService) toResponse(agency *models.Agency) AgencyResponse {
	return AgencyResponse{
		ID:           agency.ID,
		Name:         agency.Name,
		Title:        agency.Title,
		Description:  agency.Description,
		ContactEmail: agency.ContactEmail,
		ContactPhone: agency.ContactPhone,
	}
}

// normalizePagination clamps page and page size to sane bounds
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
