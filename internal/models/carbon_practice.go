package models

import (
	"time"

	"gorm.io/gorm"
)

// CarbonPractice is a catalog row describing a climate-smart practice and the
// base factor behind its credit estimate. Seeded once, served read-only.
type CarbonPractice struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-" swaggerignore:"true"`
	Name       string         `gorm:"unique;not null" json:"name" example:"Zero Tillage"`
	BaseFactor float64        `gorm:"not null" json:"base_factor" example:"1.5"`
	Unit       string         `gorm:"not null" json:"unit" example:"kg/acre"`
}
