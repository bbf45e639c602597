package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "guard-console-backend/internal/errors"
	"guard-console-backend/internal/mocks"
	"guard-console-backend/internal/service"
	"guard-console-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AgencyHandlerTestSuite defines the test suite for AgencyHandler
type AgencyHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAgencyService *mocks.MockAgencyServiceInterface
	handler           *AgencyHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AgencyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgencyService = mocks.NewMockAgencyServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewAgencyHandler(suite.mockAgencyService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	agencies := v1.Group("/agencies")
	{
		agencies.GET("", suite.handler.ListAgencies)
		agencies.POST("", suite.handler.CreateAgency)
		agencies.GET("/:id", suite.handler.GetAgency)
		agencies.PUT("/:id", suite.handler.UpdateAgency)
		agencies.DELETE("/:id", suite.handler.DeleteAgency)
	}
}

// TearDownTest cleans up after each test
func (suite *AgencyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateAgency tests creating an agency
func (suite *AgencyHandlerTestSuite) TestCreateAgency() {
	agencyID := uuid.New()
	requestBody := map[string]interface{}{
		"name":          "sentinel",
		"title":         "Sentinel Staffing",
		"contact_email": "dispatch@sentinel.com",
	}

	expectedResponse := &service.AgencyResponse{
		ID:           agencyID,
		Name:         "sentinel",
		Title:        "Sentinel Staffing",
		ContactEmail: "dispatch@sentinel.com",
	}

	suite.mockAgencyService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/agencies", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.AgencyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
	assert.Equal(suite.T(), expectedResponse.Title, response.Title)
}

// TestCreateAgencyConflict tests creating a duplicate agency
func (suite *AgencyHandlerTestSuite) TestCreateAgencyConflict() {
	requestBody := map[string]interface{}{
		"name":  "sentinel",
		"title": "Sentinel Staffing",
	}

	suite.mockAgencyService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrAgencyExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/agencies", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "agency already exists")
}

// TestGetAgency tests getting an agency by ID
func (suite *AgencyHandlerTestSuite) TestGetAgency() {
	agencyID := uuid.New()
	expectedResponse := &service.AgencyResponse{
		ID:    agencyID,
		Name:  "sentinel",
		Title: "Sentinel Staffing",
	}

	suite.mockAgencyService.EXPECT().
		GetByID(agencyID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/agencies/%s", agencyID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AgencyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), agencyID, response.ID)
}

// TestGetAgencyNotFound tests getting a nonexistent agency
func (suite *AgencyHandlerTestSuite) TestGetAgencyNotFound() {
	agencyID := uuid.New()

	suite.mockAgencyService.EXPECT().
		GetByID(agencyID).
		Return(nil, apperrors.ErrAgencyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/agencies/%s", agencyID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "agency not found")
}

// TestGetAgencyInvalidID tests getting an agency with a malformed ID
func (suite *AgencyHandlerTestSuite) TestGetAgencyInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/agencies/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid agency ID")
}

// TestListAgencies tests listing agencies with pagination
func (suite *AgencyHandlerTestSuite) TestListAgencies() {
	expectedResponse := &service.AgencyListResponse{
		Agencies: []service.AgencyResponse{
			{ID: uuid.New(), Name: "sentinel"},
			{ID: uuid.New(), Name: "aegis"},
		},
		Total:    2,
		Page:     1,
		PageSize: 20,
	}

	suite.mockAgencyService.EXPECT().
		GetAll(1, 20).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/agencies", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AgencyListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Agencies, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestUpdateAgency tests updating an agency
func (suite *AgencyHandlerTestSuite) TestUpdateAgency() {
	agencyID := uuid.New()
	requestBody := map[string]interface{}{
		"title": "Sentinel Staffing Ltd",
	}

	expectedResponse := &service.AgencyResponse{
		ID:    agencyID,
		Name:  "sentinel",
		Title: "Sentinel Staffing Ltd",
	}

	suite.mockAgencyService.EXPECT().
		Update(agencyID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/agencies/%s", agencyID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AgencyResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Sentinel Staffing Ltd", response.Title)
}

// TestDeleteAgency tests deleting an agency
func (suite *AgencyHandlerTestSuite) TestDeleteAgency() {
	agencyID := uuid.New()

	suite.mockAgencyService.EXPECT().
		Delete(agencyID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/agencies/%s", agencyID), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteAgencyNotFound tests deleting a nonexistent agency
func (suite *AgencyHandlerTestSuite) TestDeleteAgencyNotFound() {
	agencyID := uuid.New()

	suite.mockAgencyService.EXPECT().
		Delete(agencyID).
		Return(apperrors.ErrAgencyNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/agencies/%s", agencyID), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "agency not found")
}

// TestAgencyHandlerTestSuite runs the test suite
func TestAgencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AgencyHandlerTestSuite))
}
