package repository

import (
	"agrivision/internal/models"

	"gorm.io/gorm"
)

// LeaderboardRepository is the read-all/write-all boundary of the ranking
// job, kept behind an interface so the full recompute can later be swapped
// for incremental maintenance without touching callers.
type LeaderboardRepository interface {
	// UpdateRanks rewrites the dense rank of every profile in one
	// transaction and returns how many profiles were ranked. A failed run
	// leaves all prior ranks in place.
	UpdateRanks() (int, error)
	FindTop(limit int) ([]models.UserProfile, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db}
}

func (r *leaderboardRepository) UpdateRanks() (int, error) {
	ranked := 0
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var profiles []models.UserProfile
		// id ASC is the stable tiebreak for equal credit totals.
		if err := tx.Select("id").
			Order("total_carbon_credits DESC, id ASC").
			Find(&profiles).Error; err != nil {
			return err
		}

		for i, profile := range profiles {
			if err := tx.Model(&models.UserProfile{}).
				Where("id = ?", profile.ID).
				Update("rank", i+1).Error; err != nil {
				return err
			}
		}

		ranked = len(profiles)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return ranked, nil
}

func (r *leaderboardRepository) FindTop(limit int) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := r.db.Order("total_carbon_credits DESC, id ASC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
