package repository

import (
	"time"

	"agrivision/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindByID(id uint) (*models.Activity, error)
	FindAllByUserID(userID uint) ([]models.Activity, error)
	FindByStatus(status string) ([]models.Activity, error)
	// ApproveIfPending flips a still-pending record to Approved and returns
	// false when the record was not pending anymore.
	ApproveIfPending(id uint) (bool, error)
	// FindUnaggregated returns approved, credit-bearing activities whose
	// aggregation marker is still unset and that were created before the
	// cutoff. Used by the reconciliation sweep.
	FindUnaggregated(before time.Time, limit int) ([]models.Activity, error)
	CountUserActivities(userID uint) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindByID(id uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.First(&activity, id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindAllByUserID(userID uint) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) FindByStatus(status string) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("status = ?", status).
		Order("created_at ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) ApproveIfPending(id uint) (bool, error) {
	result := r.db.Model(&models.Activity{}).
		Where("id = ? AND status = ?", id, models.ActivityStatusPending).
		Update("status", models.ActivityStatusApproved)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *activityRepository) FindUnaggregated(before time.Time, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where(
		"status = ? AND calculated_credits IS NOT NULL AND aggregated_at IS NULL AND created_at < ?",
		models.ActivityStatusApproved, before,
	).
		Order("created_at ASC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) CountUserActivities(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
