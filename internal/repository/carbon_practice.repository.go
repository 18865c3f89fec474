package repository

import (
	"agrivision/internal/models"

	"gorm.io/gorm"
)

type CarbonPracticeRepository interface {
	Create(practice *models.CarbonPractice) error
	FindAll() ([]models.CarbonPractice, error)
}

type carbonPracticeRepository struct {
	db *gorm.DB
}

func NewCarbonPracticeRepository(db *gorm.DB) CarbonPracticeRepository {
	return &carbonPracticeRepository{db}
}

func (r *carbonPracticeRepository) Create(practice *models.CarbonPractice) error {
	return r.db.Create(practice).Error
}

func (r *carbonPracticeRepository) FindAll() ([]models.CarbonPractice, error) {
	var practices []models.CarbonPractice
	err := r.db.Order("name ASC").Find(&practices).Error
	return practices, err
}
