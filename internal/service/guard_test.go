package service_test

import (
	"testing"

	"guard-console-backend/internal/database/models"
	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/mocks"
	"guard-console-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GuardServiceTestSuite defines the test suite for GuardService
type GuardServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockGuardRepo  *mocks.MockGuardRepositoryInterface
	mockBranchRepo *mocks.MockBranchRepositoryInterface
	guardService   *service.GuardService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *GuardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGuardRepo = mocks.NewMockGuardRepositoryInterface(suite.ctrl)
	suite.mockBranchRepo = mocks.NewMockBranchRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.guardService = service.NewGuardService(suite.mockGuardRepo, suite.mockBranchRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *GuardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGuard tests creating a guard
func (suite *GuardServiceTestSuite) TestCreateGuard() {
	branchID := uuid.New()
	req := &service.CreateGuardRequest{
		Name:        "j.keller",
		Title:       "Jonas Keller",
		BadgeNumber: "B-1042",
		BranchID:    &branchID,
	}

	branch := &models.Branch{
		BaseModel: models.BaseModel{ID: branchID, Name: "harbor-site", Title: "Harbor Site"},
	}

	suite.mockBranchRepo.EXPECT().
		GetByID(branchID).
		Return(branch, nil).
		Times(1)

	// No guard already carries this badge number
	suite.mockGuardRepo.EXPECT().
		GetByBadgeNumber(req.BadgeNumber).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockGuardRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.guardService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.BadgeNumber, response.BadgeNumber)
	assert.Equal(suite.T(), models.GuardStatusActive, response.Status)
}

// TestCreateGuardValidationError tests creating a guard with validation error
func (suite *GuardServiceTestSuite) TestCreateGuardValidationError() {
	req := &service.CreateGuardRequest{
		Name:        "j.keller",
		Title:       "Jonas Keller",
		BadgeNumber: "", // Badge number is required
	}

	response, err := suite.guardService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateGuardUnknownBranch tests creating a guard against a missing branch
func (suite *GuardServiceTestSuite) TestCreateGuardUnknownBranch() {
	branchID := uuid.New()
	req := &service.CreateGuardRequest{
		Name:        "j.keller",
		Title:       "Jonas Keller",
		BadgeNumber: "B-1042",
		BranchID:    &branchID,
	}

	suite.mockBranchRepo.EXPECT().
		GetByID(branchID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.guardService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBranchNotFound)
}

// TestCreateGuardDuplicateBadge tests creating a guard with an existing badge number
func (suite *GuardServiceTestSuite) TestCreateGuardDuplicateBadge() {
	req := &service.CreateGuardRequest{
		Name:        "j.keller",
		Title:       "Jonas Keller",
		BadgeNumber: "B-1042",
	}

	existing := &models.Guard{
		BaseModel:   models.BaseModel{ID: uuid.New(), Name: "other", Title: "Other Guard"},
		BadgeNumber: req.BadgeNumber,
		Status:      models.GuardStatusActive,
	}

	suite.mockGuardRepo.EXPECT().
		GetByBadgeNumber(req.BadgeNumber).
		Return(existing, nil).
		Times(1)

	response, err := suite.guardService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGuardExists)
}

// TestCreateGuardInvalidStatus tests creating a guard with an unknown status value
func (suite *GuardServiceTestSuite) TestCreateGuardInvalidStatus() {
	req := &service.CreateGuardRequest{
		Name:        "j.keller",
		Title:       "Jonas Keller",
		BadgeNumber: "B-1042",
		Status:      models.GuardStatus("on-leave"),
	}

	response, err := suite.guardService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "invalid guard status")
}

// TestGetGuardByIDNotFound tests retrieving a missing guard
func (suite *GuardServiceTestSuite) TestGetGuardByIDNotFound() {
	id := uuid.New()

	suite.mockGuardRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.guardService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGuardNotFound)
}

// TestGetGuardsByBranchID tests listing a branch's guards
func (suite *GuardServiceTestSuite) TestGetGuardsByBranchID() {
	branchID := uuid.New()
	guards := []models.Guard{
		{BaseModel: models.BaseModel{ID: uuid.New(), Name: "j.keller", Title: "Jonas Keller"}, BranchID: &branchID, BadgeNumber: "B-1042", Status: models.GuardStatusActive},
		{BaseModel: models.BaseModel{ID: uuid.New(), Name: "m.osei", Title: "Mercy Osei"}, BranchID: &branchID, BadgeNumber: "B-1043", Status: models.GuardStatusSuspended},
	}

	suite.mockGuardRepo.EXPECT().
		GetByBranchID(branchID, 20, 0).
		Return(guards, int64(2), nil).
		Times(1)

	response, err := suite.guardService.GetByBranchID(branchID, false, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Guards, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestGetActiveGuardsByBranchID tests that the active-only flag routes to the active query
func (suite *GuardServiceTestSuite) TestGetActiveGuardsByBranchID() {
	branchID := uuid.New()
	guards := []models.Guard{
		{BaseModel: models.BaseModel{ID: uuid.New(), Name: "j.keller", Title: "Jonas Keller"}, BranchID: &branchID, BadgeNumber: "B-1042", Status: models.GuardStatusActive},
	}

	suite.mockGuardRepo.EXPECT().
		GetActiveByBranchID(branchID, 20, 0).
		Return(guards, int64(1), nil).
		Times(1)

	response, err := suite.guardService.GetByBranchID(branchID, true, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Guards, 1)
	assert.Equal(suite.T(), models.GuardStatusActive, response.Guards[0].Status)
}

// TestUpdateGuardStatus tests updating a guard's status
func (suite *GuardServiceTestSuite) TestUpdateGuardStatus() {
	id := uuid.New()
	guard := &models.Guard{
		BaseModel:   models.BaseModel{ID: id, Name: "j.keller", Title: "Jonas Keller"},
		BadgeNumber: "B-1042",
		Status:      models.GuardStatusActive,
	}

	newStatus := models.GuardStatusSuspended
	req := &service.UpdateGuardRequest{
		Status: &newStatus,
	}

	suite.mockGuardRepo.EXPECT().
		GetByID(id).
		Return(guard, nil).
		Times(1)

	suite.mockGuardRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.guardService.Update(id, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.GuardStatusSuspended, response.Status)
}

// TestDeleteGuardNotFound tests deleting a missing guard
func (suite *GuardServiceTestSuite) TestDeleteGuardNotFound() {
	id := uuid.New()

	suite.mockGuardRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.guardService.Delete(id)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGuardNotFound)
}

// TestGuardServiceTestSuite runs the test suite
func TestGuardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GuardServiceTestSuite))
}
