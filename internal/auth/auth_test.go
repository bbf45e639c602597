package auth_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"guard-console-backend/internal/auth"
	"guard-console-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AuthTestSuite defines the test suite for the auth package
type AuthTestSuite struct {
	suite.Suite
	service *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthTestSuite) SetupTest() {
	service, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: "test-secret",
		Issuer:    "guard-console-test",
	})
	require.NoError(suite.T(), err)
	suite.service = service
}

// TearDownTest cleans up after each test
func (suite *AuthTestSuite) TearDownTest() {
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("JWT_ISSUER")
}

// TestGenerateAndValidateJWT tests the token round trip
func (suite *AuthTestSuite) TestGenerateAndValidateJWT() {
	token, err := suite.service.GenerateJWT(&auth.AuthClaims{
		UserID:      "user-1",
		Username:    "dispatcher",
		Email:       "dispatcher@example.com",
		AgencyID:    "agency-1",
		AgencyScope: "agency",
	})
	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), token)

	claims, err := suite.service.ValidateJWT(token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "user-1", claims.UserID)
	assert.Equal(suite.T(), "dispatcher", claims.Username)
	assert.Equal(suite.T(), "agency-1", claims.AgencyID)
	assert.Equal(suite.T(), "agency", claims.AgencyScope)
	assert.Equal(suite.T(), "guard-console-test", claims.Issuer)
}

// TestValidateJWT_WrongSecret tests rejection of tokens signed elsewhere
func (suite *AuthTestSuite) TestValidateJWT_WrongSecret() {
	other, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: "other-secret"})
	require.NoError(suite.T(), err)

	token, err := other.GenerateJWT(&auth.AuthClaims{UserID: "user-1"})
	require.NoError(suite.T(), err)

	_, err = suite.service.ValidateJWT(token)
	assert.Error(suite.T(), err)
}

// TestValidateJWT_Garbage tests rejection of non-JWT input
func (suite *AuthTestSuite) TestValidateJWT_Garbage() {
	_, err := suite.service.ValidateJWT("not-a-token")
	assert.Error(suite.T(), err)
}

// TestNewAuthService_RequiresSecret tests config validation
func (suite *AuthTestSuite) TestNewAuthService_RequiresSecret() {
	_, err := auth.NewAuthService(&auth.AuthConfig{})
	assert.Error(suite.T(), err)

	_, err = auth.NewAuthService(nil)
	assert.Error(suite.T(), err)
}

// TestLoadAuthConfig_FromFile tests loading from a yaml file
func (suite *AuthTestSuite) TestLoadAuthConfig_FromFile() {
	dir := suite.T().TempDir()
	path := filepath.Join(dir, "auth.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte("jwt_secret: file-secret\nissuer: file-issuer\n"), 0o600))

	config, err := auth.LoadAuthConfig(path)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "file-secret", config.JWTSecret)
	assert.Equal(suite.T(), "file-issuer", config.Issuer)
}

// TestLoadAuthConfig_EnvOverrides tests that environment variables win over
// the file
func (suite *AuthTestSuite) TestLoadAuthConfig_EnvOverrides() {
	dir := suite.T().TempDir()
	path := filepath.Join(dir, "auth.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte("jwt_secret: file-secret\n"), 0o600))

	os.Setenv("JWT_SECRET", "env-secret")
	os.Setenv("JWT_ISSUER", "env-issuer")

	config, err := auth.LoadAuthConfig(path)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "env-secret", config.JWTSecret)
	assert.Equal(suite.T(), "env-issuer", config.Issuer)
}

// TestLoadAuthConfig_MissingFileWithoutEnv tests that a missing file and no
// env secret fails validation
func (suite *AuthTestSuite) TestLoadAuthConfig_MissingFileWithoutEnv() {
	_, err := auth.LoadAuthConfig("/nonexistent/auth.yaml")
	assert.Error(suite.T(), err)
}

// TestRequireAuth_ValidToken tests that the middleware admits a signed token
// and populates the session context, including the raw bearer credential
func (suite *AuthTestSuite) TestRequireAuth_ValidToken() {
	token, err := suite.service.GenerateJWT(&auth.AuthClaims{
		UserID:      "user-1",
		Username:    "dispatcher",
		AgencyID:    "agency-1",
		AgencyScope: "agency",
	})
	require.NoError(suite.T(), err)

	httpSuite := testutils.SetupHTTPTest()
	middleware := auth.NewAuthMiddleware(suite.service)
	httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		claims := auth.ClaimsFromContext(c)
		require.NotNil(suite.T(), claims)
		c.JSON(http.StatusOK, gin.H{
			"user_id":      c.GetString("user_id"),
			"agency_id":    c.GetString("agency_id"),
			"access_token": c.GetString("access_token"),
		})
	})

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/protected", nil,
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]string
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "user-1", response["user_id"])
	assert.Equal(suite.T(), "agency-1", response["agency_id"])
	assert.Equal(suite.T(), token, response["access_token"])
}

// TestRequireAuth_MissingHeader tests rejection without a bearer header
func (suite *AuthTestSuite) TestRequireAuth_MissingHeader() {
	httpSuite := testutils.SetupHTTPTest()
	middleware := auth.NewAuthMiddleware(suite.service)
	httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httpSuite.MakeRequest("GET", "/protected", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuth_MalformedHeader tests rejection of a non-Bearer header
func (suite *AuthTestSuite) TestRequireAuth_MalformedHeader() {
	httpSuite := testutils.SetupHTTPTest()
	middleware := auth.NewAuthMiddleware(suite.service)
	httpSuite.Router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httpSuite.MakeRequestWithHeaders("GET", "/protected", nil,
		map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestAuthTestSuite runs the test suite
func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
