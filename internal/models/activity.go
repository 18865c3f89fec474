package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity lifecycle statuses. The automated submission path only ever writes
// Approved; Pending records come from legacy clients and are resolved by the
// admin review surface.
const (
	ActivityStatusPending  = "Pending"
	ActivityStatusApproved = "Approved"
	ActivityStatusRejected = "Rejected"
)

type Activity struct {
	ID                    uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt             time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt             time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID                uint           `gorm:"not null;index" json:"user_id" example:"1"`
	ActivityType          string         `gorm:"not null" json:"activity_type" example:"Zero Tillage"`
	Area                  *float64       `json:"area,omitempty" example:"10"`
	PesticideUsed         *string        `json:"pesticide_used,omitempty" example:"Neem oil"`
	PesticideAmount       *float64       `json:"pesticide_amount,omitempty" example:"2"`
	Notes                 *string        `json:"notes,omitempty" example:"First tillage-free season"`
	PhotoURLs             []string       `gorm:"serializer:json" json:"photo_urls,omitempty"`
	Status                string         `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status" example:"Approved"`
	CalculatedCredits     *float64       `json:"calculated_credits,omitempty" example:"1.5"`
	Advice                string         `gorm:"type:text" json:"advice,omitempty"`
	ClimateImpactAnalysis string         `gorm:"type:text" json:"climate_impact_analysis,omitempty"`
	// AggregatedAt is the idempotency marker: set exactly once, in the same
	// transaction as the credit increment. NULL means not yet folded into the
	// owner's total.
	AggregatedAt *time.Time `gorm:"index" json:"aggregated_at,omitempty"`
}

// Aggregatable reports whether the aggregation worker has anything to do with
// this record. Pending or credit-less activities fold to nothing.
func (a *Activity) Aggregatable() bool {
	return a.Status == ActivityStatusApproved && a.CalculatedCredits != nil
}
