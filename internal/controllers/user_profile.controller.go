package controllers

import (
	"net/http"
	"strconv"

	"agrivision/internal/models"
	"agrivision/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

type saveProfileRequest struct {
	FullName   string   `json:"full_name"`
	FarmName   string   `json:"farm_name"`
	Location   string   `json:"location"`
	District   string   `json:"district"`
	Phone      string   `json:"phone"`
	FarmSize   *float64 `json:"farm_size,omitempty"`
	UnitSystem string   `json:"unit_system"`
}

// GetProfileByUserID godoc
// @Summary Get a user's profile
// @Description Retrieve profile, credit total and rank for a user
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /profile/{user_id} [get]
func (pc *UserProfileController) GetProfileByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	profile, err := pc.repo.FindByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for the provided user ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// SaveProfile godoc
// @Summary Create or update the authenticated user's profile
// @Description Upsert the profile's editable fields; credit total and rank are never written here
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body saveProfileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile [put]
func (pc *UserProfileController) SaveProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req saveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile := &models.UserProfile{
		UserID:     userID.(uint),
		FullName:   req.FullName,
		FarmName:   req.FarmName,
		Location:   req.Location,
		District:   req.District,
		Phone:      req.Phone,
		FarmSize:   req.FarmSize,
		UnitSystem: req.UnitSystem,
	}
	if profile.UnitSystem == "" {
		profile.UnitSystem = "metric"
	}

	if err := pc.repo.Upsert(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}
