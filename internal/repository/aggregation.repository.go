package repository

import (
	"fmt"
	"time"

	"agrivision/internal/models"

	"gorm.io/gorm"
)

// AggregationRepository folds an approved activity into its owner's running
// credit total. The whole apply is one transaction keyed by the activity id,
// so at-least-once delivery can never double-count.
type AggregationRepository interface {
	// Apply claims the activity's aggregation marker, increments the owner's
	// total and inserts the suggestion, all atomically. It returns false when
	// the activity was already aggregated (a redelivered event) and nothing
	// was changed.
	Apply(event models.ActivityEvent, suggestionText string) (bool, error)
}

type aggregationRepository struct {
	db *gorm.DB
}

func NewAggregationRepository(db *gorm.DB) AggregationRepository {
	return &aggregationRepository{db}
}

func (r *aggregationRepository) Apply(event models.ActivityEvent, suggestionText string) (bool, error) {
	if event.CalculatedCredits == nil {
		return false, fmt.Errorf("activity %d has no calculated credits", event.ActivityID)
	}
	credits := *event.CalculatedCredits

	applied := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Claim the marker. Zero rows means another delivery got here first;
		// commit with no side effects.
		claim := tx.Model(&models.Activity{}).
			Where("id = ? AND aggregated_at IS NULL", event.ActivityID).
			Update("aggregated_at", time.Now())
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return nil
		}

		// Server-side increment, never read-modify-write: concurrent applies
		// for different activities of the same user must not lose updates.
		inc := tx.Model(&models.UserProfile{}).
			Where("user_id = ?", event.UserID).
			Update("total_carbon_credits", gorm.Expr("total_carbon_credits + ?", credits))
		if inc.Error != nil {
			return inc.Error
		}
		if inc.RowsAffected == 0 {
			return fmt.Errorf("no profile found for user %d", event.UserID)
		}

		suggestion := models.Suggestion{
			UserID:            event.UserID,
			RelatedActivityID: event.ActivityID,
			SuggestionText:    suggestionText,
		}
		if err := tx.Create(&suggestion).Error; err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}
