package controllers

import (
	"net/http"
	"strconv"

	"agrivision/internal/repository"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	repo repository.SuggestionRepository
}

func NewSuggestionController(repo repository.SuggestionRepository) *SuggestionController {
	return &SuggestionController{repo: repo}
}

// GetSuggestionsByUserID godoc
// @Summary Get all suggestions for a user
// @Description Retrieve advisory suggestions generated from the user's aggregated activities
// @Tags suggestion
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Suggestions retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve suggestions"
// @Router /suggestion/user/{user_id} [get]
func (sc *SuggestionController) GetSuggestionsByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	suggestions, err := sc.repo.FindAllByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve suggestions",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Suggestions retrieved successfully",
		"data":    suggestions,
	})
}

// MarkSuggestionRead godoc
// @Summary Mark a suggestion as read
// @Description Flip the read flag of one suggestion
// @Tags suggestion
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Suggestion ID"
// @Success 200 {object} map[string]interface{} "Suggestion marked as read"
// @Failure 400 {object} map[string]interface{} "Invalid suggestion ID"
// @Failure 404 {object} map[string]interface{} "Suggestion not found"
// @Router /suggestion/{id}/read [patch]
func (sc *SuggestionController) MarkSuggestionRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid suggestion ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := sc.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Suggestion not found",
			"error":   "No suggestion exists with the provided ID",
		})
		return
	}

	if err := sc.repo.MarkRead(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update suggestion",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Suggestion marked as read",
		"data":    nil,
	})
}
