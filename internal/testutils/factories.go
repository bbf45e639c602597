package testutils

import (
	"time"

	"guard-console-backend/internal/database/models"

	"github.com/google/uuid"
)

// AgencyFactory provides methods to create test Agency data
type AgencyFactory struct{}

// NewAgencyFactory creates a new AgencyFactory
func NewAgencyFactory() *AgencyFactory {
	return &AgencyFactory{}
}

// Create creates a test Agency with default values
func (f *AgencyFactory) Create() *models.Agency {
	return &models.Agency{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			Name:        "test-agency",
			Title:       "Test Agency",
			Description: "A test staffing agency",
		},
		ContactEmail: "dispatch@test-agency.com",
		ContactPhone: "+1-555-0100",
	}
}

// WithName sets a custom name for the agency
func (f *AgencyFactory) WithName(name string) *models.Agency {
	agency := f.Create()
	agency.Name = name
	agency.Title = name + " Title"
	return agency
}

// BranchFactory provides methods to create test Branch data
type BranchFactory struct{}

// NewBranchFactory creates a new BranchFactory
func NewBranchFactory() *BranchFactory {
	return &BranchFactory{}
}

// Create creates a test Branch with default values
func (f *BranchFactory) Create() *models.Branch {
	return &models.Branch{
		BaseModel: models.BaseModel{
			ID:          uuid.New(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
			Name:        "test-branch",
			Title:       "Test Branch",
			Description: "A test guarded site",
		},
		Address:  "1 Main Street",
		City:     "Springfield",
		Timezone: "America/New_York",
	}
}

// WithAgency sets the agency ID for the branch
func (f *BranchFactory) WithAgency(agencyID uuid.UUID) *models.Branch {
	branch := f.Create()
	branch.AgencyID = &agencyID
	return branch
}

// WithName sets a custom name for the branch
func (f *BranchFactory) WithName(name string) *models.Branch {
	branch := f.Create()
	branch.Name = name
	branch.Title = name + " Title"
	return branch
}

// CheckpointFactory provides methods to create test Checkpoint data
type CheckpointFactory struct{}

// NewCheckpointFactory creates a new CheckpointFactory
func NewCheckpointFactory() *CheckpointFactory {
	return &CheckpointFactory{}
}

// Create creates a test Checkpoint belonging to the given branch
func (f *CheckpointFactory) Create(branchID uuid.UUID) *models.Checkpoint {
	return &models.Checkpoint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "test-checkpoint",
			Title:     "Test Checkpoint",
		},
		BranchID: branchID,
		Kind:     models.CheckpointKindGate,
	}
}

// WithKind sets a custom kind for the checkpoint
func (f *CheckpointFactory) WithKind(branchID uuid.UUID, kind models.CheckpointKind) *models.Checkpoint {
	checkpoint := f.Create(branchID)
	checkpoint.Kind = kind
	return checkpoint
}

// GuardFactory provides methods to create test Guard data
type GuardFactory struct{}

// NewGuardFactory creates a new GuardFactory
func NewGuardFactory() *GuardFactory {
	return &GuardFactory{}
}

// Create creates a test Guard with default values. The badge number is
// derived from the UUID so repeated factory calls never collide on the
// unique index.
func (f *GuardFactory) Create() *models.Guard {
	id := uuid.New()
	return &models.Guard{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			Name:      "test-guard",
			Title:     "Test Guard",
		},
		BadgeNumber: "B-" + id.String()[:8],
		Phone:       "+1-555-0123",
		Status:      models.GuardStatusActive,
	}
}

// WithBranch sets the branch ID for the guard
func (f *GuardFactory) WithBranch(branchID uuid.UUID) *models.Guard {
	guard := f.Create()
	guard.BranchID = &branchID
	return guard
}

// WithStatus sets a custom status for the guard
func (f *GuardFactory) WithStatus(status models.GuardStatus) *models.Guard {
	guard := f.Create()
	guard.Status = status
	return guard
}

// FactorySet provides access to all factories
type FactorySet struct {
	Agency     *AgencyFactory
	Branch     *BranchFactory
	Checkpoint *CheckpointFactory
	Guard      *GuardFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Agency:     NewAgencyFactory(),
		Branch:     NewBranchFactory(),
		Checkpoint: NewCheckpointFactory(),
		Guard:      NewGuardFactory(),
	}
}

// CreateBranchHierarchy creates an agency with one branch, one checkpoint and
// one guard wired together
func (fs *FactorySet) CreateBranchHierarchy() (*models.Agency, *models.Branch, *models.Checkpoint, *models.Guard) {
	agency := fs.Agency.Create()
	branch := fs.Branch.WithAgency(agency.ID)
	checkpoint := fs.Checkpoint.Create(branch.ID)
	guard := fs.Guard.WithBranch(branch.ID)
	guard.AgencyID = &agency.ID
	return agency, branch, checkpoint, guard
}
