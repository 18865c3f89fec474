package mocks

import (
	"context"
	"time"

	"agrivision/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(activity *models.Activity) error {
	args := m.Called(activity)
	return args.Error(0)
}

func (m *MockActivityRepository) FindByID(id uint) (*models.Activity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindAllByUserID(userID uint) ([]models.Activity, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByStatus(status string) ([]models.Activity, error) {
	args := m.Called(status)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) ApproveIfPending(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockActivityRepository) FindUnaggregated(before time.Time, limit int) ([]models.Activity, error) {
	args := m.Called(before, limit)
	return args.Get(0).([]models.Activity), args.Error(1)
}

func (m *MockActivityRepository) CountUserActivities(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Create(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Patch(userID uint, data map[string]interface{}) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

// Shared MockSuggestionRepository
type MockSuggestionRepository struct {
	mock.Mock
}

func (m *MockSuggestionRepository) Create(suggestion *models.Suggestion) error {
	args := m.Called(suggestion)
	return args.Error(0)
}

func (m *MockSuggestionRepository) FindAllByUserID(userID uint) ([]models.Suggestion, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) FindByID(id uint) (*models.Suggestion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepository) MarkRead(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockAggregationRepository
type MockAggregationRepository struct {
	mock.Mock
}

func (m *MockAggregationRepository) Apply(event models.ActivityEvent, suggestionText string) (bool, error) {
	args := m.Called(event, suggestionText)
	return args.Bool(0), args.Error(1)
}

// Shared MockLeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) UpdateRanks() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockLeaderboardRepository) FindTop(limit int) ([]models.UserProfile, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.UserProfile), args.Error(1)
}

// Shared MockAnalysisClient
type MockAnalysisClient struct {
	mock.Mock
}

func (m *MockAnalysisClient) AnalyzeActivity(ctx context.Context, req *models.CarbonAnalysisRequest) (*models.CarbonAnalysis, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarbonAnalysis), args.Error(1)
}

func (m *MockAnalysisClient) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Shared MockActivityPublisher
type MockActivityPublisher struct {
	mock.Mock
}

func (m *MockActivityPublisher) PublishActivityCreated(event models.ActivityEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockActivityPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockLeaderboardCache
type MockLeaderboardCache struct {
	mock.Mock
}

func (m *MockLeaderboardCache) StoreLeaderboard(entries []models.LeaderboardEntry, ttl time.Duration) error {
	args := m.Called(entries, ttl)
	return args.Error(0)
}

func (m *MockLeaderboardCache) GetLeaderboard() ([]models.LeaderboardEntry, bool, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.LeaderboardEntry), args.Bool(1), args.Error(2)
}
