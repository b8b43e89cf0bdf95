package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/wheatworks/millbook/internal/apperrors"
	"github.com/wheatworks/millbook/internal/dto"
)

// --- Mock AuthService (implements portssvc.AuthSvcFacade) ---
type MockAuthService struct {
	mock.Mock
	LoginFn func(ctx context.Context, username, password string) (string, time.Time, error)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAuthService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockAuthService)
	suite.router = gin.New()
	registerAuthRoutes(suite.router, suite.mockService, newLimiter("100-M"))
}

func (suite *AuthHandlerTestSuite) performLogin(body any) *httptest.ResponseRecorder {
	jsonBody, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(jsonBody))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockService.LoginFn = func(_ context.Context, username, password string) (string, time.Time, error) {
		suite.Equal("operator", username)
		suite.Equal("mill-password", password)
		return "signed-token", expiresAt, nil
	}

	w := suite.performLogin(gin.H{"username": "operator", "password": "mill-password"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockService.LoginFn = func(_ context.Context, username, password string) (string, time.Time, error) {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	w := suite.performLogin(gin.H{"username": "operator", "password": "guess"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.performLogin(gin.H{"username": "operator"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Login")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
