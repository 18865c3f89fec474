package models

import (
	"time"

	"gorm.io/gorm"
)

type Suggestion struct {
	ID                uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt         time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	UserID            uint           `gorm:"not null;index" json:"user_id" example:"1"`
	RelatedActivityID uint           `gorm:"not null;uniqueIndex" json:"related_activity_id" example:"1"`
	SuggestionText    string         `gorm:"type:text;not null" json:"suggestion_text"`
	IsRead            bool           `gorm:"not null;default:false" json:"is_read" example:"false"`
}
