package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile carries the farmer's public profile plus the credit rollup.
// TotalCarbonCredits is only ever mutated by the aggregation worker's atomic
// increment; Rank is only ever mutated by the leaderboard job and is stale
// between runs.
type UserProfile struct {
	ID                 uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt          time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt          time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID             uint           `gorm:"unique" json:"user_id" example:"1"`
	FullName           string         `json:"full_name" example:"Aarav Patil"`
	FarmName           string         `json:"farm_name" example:"Green Valley Farm"`
	Location           string         `json:"location" example:"Nashik"`
	District           string         `json:"district" example:"Nashik"`
	Phone              string         `json:"phone" example:"+91 9000000000"`
	FarmSize           *float64       `json:"farm_size" example:"12.5"`
	UnitSystem         string         `gorm:"type:varchar(10);default:'metric'" json:"unit_system" example:"metric"`
	TotalCarbonCredits float64        `gorm:"not null;default:0;index" json:"total_carbon_credits" example:"42.5"`
	Rank               int            `gorm:"not null;default:0" json:"rank" example:"3"`
}

// LeaderboardEntry is the public projection of a ranked profile.
type LeaderboardEntry struct {
	UserID             uint    `json:"user_id" example:"1"`
	FullName           string  `json:"full_name" example:"Aarav Patil"`
	TotalCarbonCredits float64 `json:"total_carbon_credits" example:"42.5"`
	Rank               int     `json:"rank" example:"3"`
}

// LeaderboardEntryFromProfile projects one profile into its leaderboard row.
func LeaderboardEntryFromProfile(p *UserProfile) LeaderboardEntry {
	return LeaderboardEntry{
		UserID:             p.UserID,
		FullName:           p.FullName,
		TotalCarbonCredits: p.TotalCarbonCredits,
		Rank:               p.Rank,
	}
}
