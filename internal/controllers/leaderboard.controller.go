package controllers

import (
	"log"
	"net/http"
	"strconv"

	"agrivision/internal/models"
	"agrivision/internal/repository"

	"github.com/gin-gonic/gin"
)

const defaultLeaderboardSize = 50

// LeaderboardCacheReader is the read side of the cached snapshot maintained
// by the ranking job.
type LeaderboardCacheReader interface {
	GetLeaderboard() ([]models.LeaderboardEntry, bool, error)
}

type LeaderboardController struct {
	repo  repository.LeaderboardRepository
	cache LeaderboardCacheReader
}

func NewLeaderboardController(repo repository.LeaderboardRepository, cache LeaderboardCacheReader) *LeaderboardController {
	return &LeaderboardController{repo: repo, cache: cache}
}

// GetLeaderboard godoc
// @Summary Get the carbon credit leaderboard
// @Description Top users by total carbon credits, served from the cached snapshot with a database fallback
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} map[string]interface{} "Leaderboard retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve leaderboard"
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if lc.cache != nil {
		entries, found, err := lc.cache.GetLeaderboard()
		if err != nil {
			log.Printf("Leaderboard cache read failed, falling back to database: %v", err)
		} else if found {
			if len(entries) > limit {
				entries = entries[:limit]
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Leaderboard retrieved successfully",
				"data":    entries,
			})
			return
		}
	}

	profiles, err := lc.repo.FindTop(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve leaderboard",
			"error":   err.Error(),
		})
		return
	}

	entries := make([]models.LeaderboardEntry, 0, len(profiles))
	for i := range profiles {
		entries = append(entries, models.LeaderboardEntryFromProfile(&profiles[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Leaderboard retrieved successfully",
		"data":    entries,
	})
}
