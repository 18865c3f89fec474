package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agrivision/internal/mocks"
	"agrivision/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetPendingActivities(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockActivityRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful retrieval",
			setupMock: func(m *mocks.MockActivityRepository) {
				activities := []models.Activity{
					{ID: 1, UserID: 1, ActivityType: "Agroforestry", Status: models.ActivityStatusPending},
				}
				m.On("FindByStatus", models.ActivityStatusPending).Return(activities, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Pending activities retrieved successfully",
		},
		{
			name: "repository error",
			setupMock: func(m *mocks.MockActivityRepository) {
				m.On("FindByStatus", models.ActivityStatusPending).Return([]models.Activity{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve activities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockActivityRepository)
			mockPublisher := new(mocks.MockActivityPublisher)
			tt.setupMock(mockRepo)

			controller := NewAdminController(mockRepo, mockPublisher)
			router := setupTestRouter()
			router.GET("/admin/activity/pending", controller.GetPendingActivities)

			req := httptest.NewRequest("GET", "/admin/activity/pending", nil)
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

func TestApproveActivity(t *testing.T) {
	pendingActivity := func() *models.Activity {
		credits := 2.5
		return &models.Activity{
			ID:                1,
			UserID:            1,
			ActivityType:      "Agroforestry",
			Status:            models.ActivityStatusPending,
			CalculatedCredits: &credits,
		}
	}

	tests := []struct {
		name           string
		activityID     string
		setupMocks     func(*mocks.MockActivityRepository, *mocks.MockActivityPublisher)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:       "approval publishes the activity event",
			activityID: "1",
			setupMocks: func(r *mocks.MockActivityRepository, p *mocks.MockActivityPublisher) {
				r.On("FindByID", uint(1)).Return(pendingActivity(), nil)
				r.On("ApproveIfPending", uint(1)).Return(true, nil)
				p.On("PublishActivityCreated", mock.AnythingOfType("models.ActivityEvent")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Activity approved",
		},
		{
			name:       "already approved",
			activityID: "1",
			setupMocks: func(r *mocks.MockActivityRepository, p *mocks.MockActivityPublisher) {
				approved := &models.Activity{ID: 1, UserID: 1, ActivityType: "Agroforestry", Status: models.ActivityStatusApproved}
				r.On("FindByID", uint(1)).Return(approved, nil)
				r.On("ApproveIfPending", uint(1)).Return(false, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Activity is not pending",
		},
		{
			name:       "publish failure still approves",
			activityID: "1",
			setupMocks: func(r *mocks.MockActivityRepository, p *mocks.MockActivityPublisher) {
				r.On("FindByID", uint(1)).Return(pendingActivity(), nil)
				r.On("ApproveIfPending", uint(1)).Return(true, nil)
				p.On("PublishActivityCreated", mock.AnythingOfType("models.ActivityEvent")).Return(errors.New("broker unavailable"))
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Activity approved",
		},
		{
			name:           "invalid activity ID",
			activityID:     "invalid",
			setupMocks:     func(r *mocks.MockActivityRepository, p *mocks.MockActivityPublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid activity ID",
		},
		{
			name:       "activity not found",
			activityID: "999",
			setupMocks: func(r *mocks.MockActivityRepository, p *mocks.MockActivityPublisher) {
				r.On("FindByID", uint(999)).Return(nil, errors.New("not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Activity not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockActivityRepository)
			mockPublisher := new(mocks.MockActivityPublisher)
			tt.setupMocks(mockRepo, mockPublisher)

			controller := NewAdminController(mockRepo, mockPublisher)
			router := setupTestRouter()
			router.PUT("/admin/activity/:id/approve", controller.ApproveActivity)

			req := httptest.NewRequest("PUT", "/admin/activity/"+tt.activityID+"/approve", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
			mockPublisher.AssertExpectations(t)
		})
	}
}
