//go:build integration
// +build integration

package repository

import (
	"testing"

	"guard-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BranchRepositoryTestSuite tests the BranchRepository
type BranchRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BranchRepository
	agencyRepo    *AgencyRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BranchRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBranchRepository(suite.baseTestSuite.DB)
	suite.agencyRepo = NewAgencyRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BranchRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BranchRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BranchRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new branch
func (suite *BranchRepositoryTestSuite) TestCreate() {
	branch := suite.factories.Branch.Create()

	err := suite.repo.Create(branch)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, branch.ID)
	suite.NotZero(branch.CreatedAt)
}

// TestGetByID tests retrieving a branch by ID
func (suite *BranchRepositoryTestSuite) TestGetByID() {
	branch := suite.factories.Branch.Create()
	suite.NoError(suite.repo.Create(branch))

	found, err := suite.repo.GetByID(branch.ID)

	suite.NoError(err)
	suite.Equal(branch.ID, found.ID)
	suite.Equal(branch.Name, found.Name)
}

// TestGetByIDNotFound tests retrieving a nonexistent branch
func (suite *BranchRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByAgencyID tests listing an agency's branches
func (suite *BranchRepositoryTestSuite) TestGetByAgencyID() {
	agency := suite.factories.Agency.Create()
	suite.NoError(suite.agencyRepo.Create(agency))

	first := suite.factories.Branch.WithAgency(agency.ID)
	first.Name = "alpha-site"
	second := suite.factories.Branch.WithAgency(agency.ID)
	second.Name = "bravo-site"
	other := suite.factories.Branch.WithName("other-site")

	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))
	suite.NoError(suite.repo.Create(other))

	branches, total, err := suite.repo.GetByAgencyID(agency.ID, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(branches, 2)
	suite.Equal("alpha-site", branches[0].Name)
	suite.Equal("bravo-site", branches[1].Name)
}

// TestSearch tests substring search over name and title
func (suite *BranchRepositoryTestSuite) TestSearch() {
	harbor := suite.factories.Branch.WithName("harbor-gate")
	downtown := suite.factories.Branch.WithName("downtown-tower")
	downtown.Title = "Downtown Harbor View"
	plant := suite.factories.Branch.WithName("north-plant")

	suite.NoError(suite.repo.Create(harbor))
	suite.NoError(suite.repo.Create(downtown))
	suite.NoError(suite.repo.Create(plant))

	branches, total, err := suite.repo.Search("harbor", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(branches, 2)
}

// TestGetAllPagination tests list pagination
func (suite *BranchRepositoryTestSuite) TestGetAllPagination() {
	for _, name := range []string{"a-site", "b-site", "c-site"} {
		suite.NoError(suite.repo.Create(suite.factories.Branch.WithName(name)))
	}

	branches, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(branches, 2)

	branches, _, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(branches, 1)
	suite.Equal("c-site", branches[0].Name)
}

// TestUpdate tests updating a branch
func (suite *BranchRepositoryTestSuite) TestUpdate() {
	branch := suite.factories.Branch.Create()
	suite.NoError(suite.repo.Create(branch))

	branch.City = "Portland"
	suite.NoError(suite.repo.Update(branch))

	found, err := suite.repo.GetByID(branch.ID)
	suite.NoError(err)
	suite.Equal("Portland", found.City)
}

// TestDelete tests deleting a branch
func (suite *BranchRepositoryTestSuite) TestDelete() {
	branch := suite.factories.Branch.Create()
	suite.NoError(suite.repo.Create(branch))

	suite.NoError(suite.repo.Delete(branch.ID))

	_, err := suite.repo.GetByID(branch.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithCheckpoints tests preloading a branch's checkpoints
func (suite *BranchRepositoryTestSuite) TestGetWithCheckpoints() {
	branch := suite.factories.Branch.Create()
	suite.NoError(suite.repo.Create(branch))

	checkpointRepo := NewCheckpointRepository(suite.baseTestSuite.DB)
	suite.NoError(checkpointRepo.Create(suite.factories.Checkpoint.Create(branch.ID)))

	found, err := suite.repo.GetWithCheckpoints(branch.ID)

	suite.NoError(err)
	suite.Len(found.Checkpoints, 1)
}

// TestBranchRepositoryTestSuite runs the test suite
func TestBranchRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BranchRepositoryTestSuite))
}
