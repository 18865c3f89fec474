package services

import (
	"context"
	"errors"
	"log"

	"agrivision/internal/ai"
	"agrivision/internal/models"
	"agrivision/internal/mq"
	"agrivision/internal/repository"
)

const maxSubmissionPhotos = 3

// ActivitySubmission is a validated farmer submission before scoring.
type ActivitySubmission struct {
	UserID          uint
	ActivityType    string
	Area            *float64
	PesticideUsed   *string
	PesticideAmount *float64
	Notes           *string
	PhotoDataURIs   []string
}

// ActivityService turns a raw submission into a scored, persisted activity
// and hands the score back to the caller without waiting for aggregation.
type ActivityService struct {
	activityRepo repository.ActivityRepository
	aiClient     ai.AnalysisClient
	publisher    mq.ActivityPublisher
}

func NewActivityService(
	activityRepo repository.ActivityRepository,
	aiClient ai.AnalysisClient,
	publisher mq.ActivityPublisher,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		aiClient:     aiClient,
		publisher:    publisher,
	}
}

func (s *ActivityService) validate(sub *ActivitySubmission) error {
	if sub.UserID == 0 {
		return errors.New("user id is required")
	}
	if sub.ActivityType == "" {
		return errors.New("activity type is required")
	}
	if sub.Area != nil && *sub.Area < 0 {
		return errors.New("area cannot be negative")
	}
	if len(sub.PhotoDataURIs) > maxSubmissionPhotos {
		return errors.New("at most three photos are allowed")
	}
	return nil
}

// Submit scores and persists one activity. The gateway gets exactly one
// attempt; any failure falls back to fixed values so a submission never
// visibly fails because of gateway downtime. Only a persistence failure is
// surfaced to the caller, and then nothing else has happened.
func (s *ActivityService) Submit(ctx context.Context, sub *ActivitySubmission) (*models.CarbonAnalysis, *models.Activity, error) {
	if err := s.validate(sub); err != nil {
		return nil, nil, err
	}

	analysis, err := s.aiClient.AnalyzeActivity(ctx, s.analysisRequest(sub))
	if err != nil {
		log.Printf("Analysis failed for user %d activity %q, using fallback: %v",
			sub.UserID, sub.ActivityType, err)
		analysis = models.FallbackCarbonAnalysis(sub.ActivityType)
	}

	credits := analysis.EstimatedCO2SavedKg
	activity := &models.Activity{
		UserID:                sub.UserID,
		ActivityType:          sub.ActivityType,
		Area:                  sub.Area,
		PesticideUsed:         sub.PesticideUsed,
		PesticideAmount:       sub.PesticideAmount,
		Notes:                 sub.Notes,
		PhotoURLs:             sub.PhotoDataURIs,
		Status:                models.ActivityStatusApproved,
		CalculatedCredits:     &credits,
		Advice:                analysis.ReductionAdvice,
		ClimateImpactAnalysis: analysis.ClimateImpactAnalysis,
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, nil, err
	}

	// The durable write is the source of truth; a lost publish is recovered
	// by the reconciliation sweep.
	if err := s.publisher.PublishActivityCreated(models.EventFromActivity(activity)); err != nil {
		log.Printf("Failed to publish activity %d, sweep will pick it up: %v", activity.ID, err)
	}

	return analysis, activity, nil
}

func (s *ActivityService) analysisRequest(sub *ActivitySubmission) *models.CarbonAnalysisRequest {
	req := &models.CarbonAnalysisRequest{
		UserID:          sub.UserID,
		ActivityType:    sub.ActivityType,
		Area:            sub.Area,
		PesticideUsed:   sub.PesticideUsed,
		PesticideAmount: sub.PesticideAmount,
		Notes:           sub.Notes,
	}
	if len(sub.PhotoDataURIs) > 0 {
		req.ActivityPhotoURL = sub.PhotoDataURIs[0]
	}
	if len(sub.PhotoDataURIs) > 1 {
		req.CropPhotoURL = sub.PhotoDataURIs[1]
	}
	if len(sub.PhotoDataURIs) > 2 {
		req.PesticidePhotoURL = sub.PhotoDataURIs[2]
	}
	return req
}
