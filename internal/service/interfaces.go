package service

import (
	"context"

	"guard-console-backend/internal/registry"
	"guard-console-backend/internal/shiftview"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AgencyServiceInterface defines the interface for agency service
type AgencyServiceInterface interface {
	Create(req *CreateAgencyRequest) (*AgencyResponse, error)
	GetByID(id uuid.UUID) (*AgencyResponse, error)
	GetAll(page, pageSize int) (*AgencyListResponse, error)
	Update(id uuid.UUID, req *UpdateAgencyRequest) (*AgencyResponse, error)
	Delete(id uuid.UUID) error
}

// BranchServiceInterface defines the interface for branch service
type BranchServiceInterface interface {
	Create(req *CreateBranchRequest) (*BranchResponse, error)
	GetByID(id uuid.UUID) (*BranchResponse, error)
	GetAll(query string, page, pageSize int) (*BranchListResponse, error)
	GetByAgencyID(agencyID uuid.UUID, page, pageSize int) (*BranchListResponse, error)
	Update(id uuid.UUID, req *UpdateBranchRequest) (*BranchResponse, error)
	Delete(id uuid.UUID) error
}

// CheckpointServiceInterface defines the interface for checkpoint service
type CheckpointServiceInterface interface {
	Create(req *CreateCheckpointRequest) (*CheckpointResponse, error)
	GetByID(id uuid.UUID) (*CheckpointResponse, error)
	GetByBranchID(branchID uuid.UUID, page, pageSize int) (*CheckpointListResponse, error)
	Update(id uuid.UUID, req *UpdateCheckpointRequest) (*CheckpointResponse, error)
	Delete(id uuid.UUID) error
}

// GuardServiceInterface defines the interface for guard service
type GuardServiceInterface interface {
	Create(req *CreateGuardRequest) (*GuardResponse, error)
	GetByID(id uuid.UUID) (*GuardResponse, error)
	GetAll(page, pageSize int) (*GuardListResponse, error)
	GetByBranchID(branchID uuid.UUID, activeOnly bool, page, pageSize int) (*GuardListResponse, error)
	Update(id uuid.UUID, req *UpdateGuardRequest) (*GuardResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftRegistryServiceInterface defines the interface for the shift registry orchestrator
type ShiftRegistryServiceInterface interface {
	Refresh(ctx context.Context, scope shiftview.Scope, filter ShiftFilter, cred registry.Credential) (shiftview.ScopeState, error)
	Snapshot(scope shiftview.Scope) shiftview.ScopeState
}
