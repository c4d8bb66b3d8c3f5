package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finsight-app/finsight_backend/internal/apperrors"
	"github.com/finsight-app/finsight_backend/internal/core/domain"
	portssvc "github.com/finsight-app/finsight_backend/internal/core/ports/services"
	"github.com/finsight-app/finsight_backend/internal/dto"
	"github.com/finsight-app/finsight_backend/internal/handlers"
	"github.com/finsight-app/finsight_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, userID string, req dto.SaveGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.SaveGoalRequest) (*domain.Goal, error) {
	args := m.Called(ctx, userID, goalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	args := m.Called(ctx, userID, goalID)
	return args.Error(0)
}

func (m *MockGoalService) Progress(goal domain.Goal) float64 {
	args := m.Called(goal)
	return args.Get(0).(float64)
}

func (m *MockGoalService) Summary(goals []domain.Goal) domain.GoalSummary {
	args := m.Called(goals)
	return args.Get(0).(domain.GoalSummary)
}

// Ensure mock implements the interface
var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Test Suite ---
type GoalHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockGoalService *MockGoalService
	jwtSecret       string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *GoalHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finsight-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *GoalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockGoalService = new(MockGoalService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterGoalRoutes(v1, suite.mockGoalService)
}

func (suite *GoalHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *GoalHandlerTestSuite) TestListGoals_Success() {
	userID := uuid.NewString()
	goals := []domain.Goal{
		{ID: "g1", Name: "Emergency Fund", Icon: domain.IconBriefcase, Target: "₹8,00,000", Current: "₹2,00,000"},
	}

	suite.mockGoalService.On("ListGoals", mock.Anything, userID).Return(goals, nil).Once()
	suite.mockGoalService.On("Progress", goals[0]).Return(25.0)
	suite.mockGoalService.On("Summary", goals).Return(domain.GoalSummary{Total: 1, Active: 1}).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/goals", nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListGoalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Goals, 1)
	suite.Equal("Emergency Fund", resp.Goals[0].Name)
	suite.Equal(25.0, resp.Goals[0].Progress)
	suite.Equal(1, resp.Summary.Total)
	suite.Equal(1, resp.Summary.Active)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestListGoals_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/goals", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockGoalService.AssertNotCalled(suite.T(), "ListGoals", mock.Anything, mock.Anything)
}

func (suite *GoalHandlerTestSuite) TestCreateGoal_Success() {
	userID := uuid.NewString()
	created := &domain.Goal{ID: "g1", Name: "House", Icon: domain.IconHome, Target: "₹50,00,000", Current: "₹0"}

	suite.mockGoalService.On("CreateGoal", mock.Anything, userID, mock.MatchedBy(func(r dto.SaveGoalRequest) bool {
		return r.Name == "House" && r.Icon == "Home"
	})).Return(created, nil).Once()
	suite.mockGoalService.On("Progress", *created).Return(0.0)

	body := []byte(`{"name":"House","icon":"Home","target":"5000000","current":"0"}`)
	w := suite.authedRequest(http.MethodPost, "/api/v1/goals", body, userID)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.GoalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("g1", resp.ID)
	suite.Equal("₹50,00,000", resp.Target)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestCreateGoal_InvalidIconRejectedByBinding() {
	userID := uuid.NewString()

	body := []byte(`{"name":"House","icon":"Rocket","target":"5000000","current":"0"}`)
	w := suite.authedRequest(http.MethodPost, "/api/v1/goals", body, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGoalService.AssertNotCalled(suite.T(), "CreateGoal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalHandlerTestSuite) TestUpdateGoal_NotFound() {
	userID := uuid.NewString()

	suite.mockGoalService.On("UpdateGoal", mock.Anything, userID, "missing-id", mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	body := []byte(`{"name":"Ghost","target":"1000","current":"0"}`)
	w := suite.authedRequest(http.MethodPut, "/api/v1/goals/missing-id", body, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestCreateGoal_StorageUnavailable() {
	userID := uuid.NewString()

	suite.mockGoalService.On("CreateGoal", mock.Anything, userID, mock.Anything).
		Return(nil, apperrors.ErrPersistence).Once()

	body := []byte(`{"name":"House","target":"5000000","current":"0"}`)
	w := suite.authedRequest(http.MethodPost, "/api/v1/goals", body, userID)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockGoalService.AssertExpectations(suite.T())
}

func (suite *GoalHandlerTestSuite) TestDeleteGoal_Success() {
	userID := uuid.NewString()

	suite.mockGoalService.On("DeleteGoal", mock.Anything, userID, "g1").Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/goals/g1", nil, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockGoalService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestGoalHandler(t *testing.T) {
	suite.Run(t, new(GoalHandlerTestSuite))
}
