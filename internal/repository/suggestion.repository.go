package repository

import (
	"agrivision/internal/models"

	"gorm.io/gorm"
)

type SuggestionRepository interface {
	Create(suggestion *models.Suggestion) error
	FindAllByUserID(userID uint) ([]models.Suggestion, error)
	FindByID(id uint) (*models.Suggestion, error)
	MarkRead(id uint) error
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db}
}

func (r *suggestionRepository) Create(suggestion *models.Suggestion) error {
	return r.db.Create(suggestion).Error
}

func (r *suggestionRepository) FindAllByUserID(userID uint) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&suggestions).Error
	return suggestions, err
}

func (r *suggestionRepository) FindByID(id uint) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.db.First(&suggestion, id).Error
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *suggestionRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Suggestion{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
