package repository

import (
	"agrivision/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepository interface {
	Create(profile *models.UserProfile) error
	FindByUserID(userID uint) (*models.UserProfile, error)
	Upsert(profile *models.UserProfile) error
	Patch(userID uint, data map[string]interface{}) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db}
}

func (r *userProfileRepository) Create(profile *models.UserProfile) error {
	return r.db.Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first write and updates its editable fields
// afterwards. The credit total and rank columns are owned by the aggregation
// worker and the leaderboard job and are never written here.
func (r *userProfileRepository) Upsert(profile *models.UserProfile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"full_name", "farm_name", "location", "district",
			"phone", "farm_size", "unit_system", "updated_at",
		}),
	}).Create(profile).Error
}

func (r *userProfileRepository) Patch(userID uint, data map[string]interface{}) error {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return err
	}
	return r.db.Model(&profile).Updates(data).Error
}
