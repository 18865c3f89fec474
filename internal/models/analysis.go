package models

import "fmt"

// Fallback values used when the inference gateway fails. Every submission is
// still approved and credited so that gateway downtime never blocks a farmer.
const (
	FallbackCreditsKg    = 1.5
	FallbackRewardPoints = 15
	FallbackAdvice       = "AI analysis could not be completed, but your activity has been approved. Keep up the great work!"

	// GenericSuggestionText is used when an activity reaches aggregation
	// without climate-impact text.
	GenericSuggestionText = "Keep logging your climate-smart activities to grow your impact."
)

// CarbonAnalysisRequest is the payload sent to the inference gateway. Photo
// fields are inline base64 data URIs, already materialized by the client.
type CarbonAnalysisRequest struct {
	UserID            uint     `json:"userId"`
	ActivityType      string   `json:"activityType"`
	Area              *float64 `json:"area,omitempty"`
	PesticideUsed     *string  `json:"pesticideUsed,omitempty"`
	PesticideAmount   *float64 `json:"pesticideAmount,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
	ActivityPhotoURL  string   `json:"activityPhotoUrl,omitempty"`
	CropPhotoURL      string   `json:"cropPhotoUrl,omitempty"`
	PesticidePhotoURL string   `json:"pesticidePhotoUrl,omitempty"`
}

// CarbonAnalysis is the gateway's schema-validated verdict on one activity.
type CarbonAnalysis struct {
	EstimatedCO2SavedKg   float64 `json:"estimatedCO2SavedKg"`
	RewardPoints          int     `json:"rewardPoints"`
	ReductionAdvice       string  `json:"reductionAdvice"`
	ClimateImpactAnalysis string  `json:"climateImpactAnalysis"`
	IsApproved            bool    `json:"isApproved"`
	VerificationDetails   string  `json:"verificationDetails"`
	PesticideAnalysis     string  `json:"pesticideAnalysis"`
	ProperUseAdvice       string  `json:"properUseAdvice"`
}

// FallbackCarbonAnalysis builds the fixed analysis used when the gateway call
// fails for any reason.
func FallbackCarbonAnalysis(activityType string) *CarbonAnalysis {
	return &CarbonAnalysis{
		EstimatedCO2SavedKg:   FallbackCreditsKg,
		RewardPoints:          FallbackRewardPoints,
		ReductionAdvice:       FallbackAdvice,
		ClimateImpactAnalysis: fmt.Sprintf("Your activity '%s' contributes positively to the environment.", activityType),
		IsApproved:            true,
		VerificationDetails:   "Approved with default values after analysis failure.",
	}
}

// ActivityEvent is the message published to RabbitMQ when an activity becomes
// visible to the aggregation worker. It carries the record as it exists at
// publish time; the record is immutable afterwards.
type ActivityEvent struct {
	ActivityID            uint     `json:"activity_id"`
	UserID                uint     `json:"user_id"`
	ActivityType          string   `json:"activity_type"`
	Status                string   `json:"status"`
	CalculatedCredits     *float64 `json:"calculated_credits,omitempty"`
	ClimateImpactAnalysis string   `json:"climate_impact_analysis,omitempty"`
}

// EventFromActivity projects the persisted record into its queue message.
func EventFromActivity(a *Activity) ActivityEvent {
	return ActivityEvent{
		ActivityID:            a.ID,
		UserID:                a.UserID,
		ActivityType:          a.ActivityType,
		Status:                a.Status,
		CalculatedCredits:     a.CalculatedCredits,
		ClimateImpactAnalysis: a.ClimateImpactAnalysis,
	}
}
