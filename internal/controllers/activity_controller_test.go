package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrivision/internal/mocks"
	"agrivision/internal/models"
	"agrivision/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupActivityController() (*ActivityController, *mocks.MockActivityRepository, *mocks.MockAnalysisClient, *mocks.MockActivityPublisher) {
	mockRepo := new(mocks.MockActivityRepository)
	mockClient := new(mocks.MockAnalysisClient)
	mockPublisher := new(mocks.MockActivityPublisher)
	service := services.NewActivityService(mockRepo, mockClient, mockPublisher)
	controller := NewActivityController(service, mockRepo)
	return controller, mockRepo, mockClient, mockPublisher
}

func addAuthMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestSubmitActivity(t *testing.T) {
	analysis := &models.CarbonAnalysis{
		EstimatedCO2SavedKg:   3.72,
		RewardPoints:          37,
		ReductionAdvice:       "Rotate in a legume cover crop next season.",
		ClimateImpactAnalysis: "Zero tillage preserves soil carbon stocks.",
		IsApproved:            true,
	}

	tests := []struct {
		name           string
		userID         uint
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockActivityRepository, *mocks.MockAnalysisClient, *mocks.MockActivityPublisher)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful submission",
			userID: 1,
			requestBody: map[string]interface{}{
				"activity_type": "Zero Tillage",
				"area":          10,
			},
			setupMocks: func(r *mocks.MockActivityRepository, c *mocks.MockAnalysisClient, p *mocks.MockActivityPublisher) {
				c.On("AnalyzeActivity", mock.Anything, mock.AnythingOfType("*models.CarbonAnalysisRequest")).Return(analysis, nil)
				r.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil)
				p.On("PublishActivityCreated", mock.AnythingOfType("models.ActivityEvent")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Activity verified and logged",
		},
		{
			name:   "fallback scoring on gateway failure",
			userID: 1,
			requestBody: map[string]interface{}{
				"activity_type": "Compost Application",
			},
			setupMocks: func(r *mocks.MockActivityRepository, c *mocks.MockAnalysisClient, p *mocks.MockActivityPublisher) {
				c.On("AnalyzeActivity", mock.Anything, mock.AnythingOfType("*models.CarbonAnalysisRequest")).Return(nil, errors.New("gateway unavailable"))
				r.On("Create", mock.AnythingOfType("*models.Activity")).Return(nil)
				p.On("PublishActivityCreated", mock.AnythingOfType("models.ActivityEvent")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Activity verified and logged",
		},
		{
			name:   "missing activity type",
			userID: 1,
			requestBody: map[string]interface{}{
				"area": 10,
			},
			setupMocks:     func(r *mocks.MockActivityRepository, c *mocks.MockAnalysisClient, p *mocks.MockActivityPublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:           "invalid JSON",
			userID:         1,
			requestBody:    nil,
			setupMocks:     func(r *mocks.MockActivityRepository, c *mocks.MockAnalysisClient, p *mocks.MockActivityPublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name:   "persistence failure",
			userID: 1,
			requestBody: map[string]interface{}{
				"activity_type": "Zero Tillage",
			},
			setupMocks: func(r *mocks.MockActivityRepository, c *mocks.MockAnalysisClient, p *mocks.MockActivityPublisher) {
				c.On("AnalyzeActivity", mock.Anything, mock.AnythingOfType("*models.CarbonAnalysisRequest")).Return(analysis, nil)
				r.On("Create", mock.AnythingOfType("*models.Activity")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to log activity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, mockClient, mockPublisher := setupActivityController()
			tt.setupMocks(mockRepo, mockClient, mockPublisher)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(tt.userID))
			router.POST("/activity", controller.SubmitActivity)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest("POST", "/activity", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
			mockClient.AssertExpectations(t)
			mockPublisher.AssertExpectations(t)
		})
	}
}

func TestSubmitActivityUnauthorized(t *testing.T) {
	controller, _, _, _ := setupActivityController()
	router := setupTestRouter()
	router.POST("/activity", controller.SubmitActivity)

	body, _ := json.Marshal(map[string]interface{}{"activity_type": "Zero Tillage"})
	req := httptest.NewRequest("POST", "/activity", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Unauthorized access", response["message"])
}

func TestGetActivitiesByUserID(t *testing.T) {
	tests := []struct {
		name           string
		userIDParam    string
		setupMock      func(*mocks.MockActivityRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "successful retrieval",
			userIDParam: "1",
			setupMock: func(m *mocks.MockActivityRepository) {
				activities := []models.Activity{
					{ID: 1, UserID: 1, ActivityType: "Zero Tillage", Status: models.ActivityStatusApproved},
					{ID: 2, UserID: 1, ActivityType: "Compost Application", Status: models.ActivityStatusApproved},
				}
				m.On("FindAllByUserID", uint(1)).Return(activities, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Activities retrieved successfully",
		},
		{
			name:           "invalid user ID",
			userIDParam:    "invalid",
			setupMock:      func(m *mocks.MockActivityRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid user ID",
		},
		{
			name:        "repository error",
			userIDParam: "1",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindAllByUserID", uint(1)).Return([]models.Activity{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve activities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _, _ := setupActivityController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.GET("/activity/user/:user_id", controller.GetActivitiesByUserID)

			req := httptest.NewRequest("GET", "/activity/user/"+tt.userIDParam, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetActivityByID(t *testing.T) {
	tests := []struct {
		name           string
		activityID     string
		setupMock      func(*mocks.MockActivityRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:       "successful retrieval",
			activityID: "1",
			setupMock: func(m *mocks.MockActivityRepository) {
				activity := &models.Activity{ID: 1, UserID: 1, ActivityType: "Zero Tillage", Status: models.ActivityStatusApproved}
				m.On("FindByID", uint(1)).Return(activity, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Activity retrieved successfully",
		},
		{
			name:           "invalid activity ID",
			activityID:     "invalid",
			setupMock:      func(m *mocks.MockActivityRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid activity ID",
		},
		{
			name:       "activity not found",
			activityID: "999",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindByID", uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Activity not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo, _, _ := setupActivityController()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.Use(addAuthMiddleware(1))
			router.GET("/activity/:id", controller.GetActivityByID)

			req := httptest.NewRequest("GET", "/activity/"+tt.activityID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}
