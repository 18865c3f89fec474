package controllers

import (
	"net/http"
	"strconv"

	"agrivision/internal/repository"
	"agrivision/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	service *services.ActivityService
	repo    repository.ActivityRepository
}

func NewActivityController(service *services.ActivityService, repo repository.ActivityRepository) *ActivityController {
	return &ActivityController{service: service, repo: repo}
}

type submitActivityRequest struct {
	ActivityType    string   `json:"activity_type" binding:"required"`
	Area            *float64 `json:"area,omitempty"`
	PesticideUsed   *string  `json:"pesticide_used,omitempty"`
	PesticideAmount *float64 `json:"pesticide_amount,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	PhotoDataURIs   []string `json:"photo_data_uris,omitempty"`
}

// SubmitActivity godoc
// @Summary Submit a climate-smart activity for scoring
// @Description Score the activity via the AI gateway (fallback values on failure), persist it as Approved and return the analysis immediately
// @Tags activity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param activity body submitActivityRequest true "Activity submission"
// @Success 201 {object} map[string]interface{} "Activity scored and logged"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to persist activity"
// @Router /activity [post]
func (ac *ActivityController) SubmitActivity(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized access",
		})
		return
	}

	var req submitActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	submission := &services.ActivitySubmission{
		UserID:          userID.(uint),
		ActivityType:    req.ActivityType,
		Area:            req.Area,
		PesticideUsed:   req.PesticideUsed,
		PesticideAmount: req.PesticideAmount,
		Notes:           req.Notes,
		PhotoDataURIs:   req.PhotoDataURIs,
	}

	analysis, activity, err := ac.service.Submit(c.Request.Context(), submission)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Activity verified and logged",
		"data": gin.H{
			"activity_id": activity.ID,
			"analysis":    analysis,
		},
	})
}

// GetActivitiesByUserID godoc
// @Summary Get all activities for a user
// @Description Retrieve all activities associated with a specific user ID
// @Tags activity
// @Produce json
// @Security ApiKeyAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve activities"
// @Router /activity/user/{user_id} [get]
func (ac *ActivityController) GetActivitiesByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	activities, err := ac.repo.FindAllByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    activities,
	})
}

// GetActivityByID godoc
// @Summary Get an activity by ID
// @Description Retrieve activity information by activity ID
// @Tags activity
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Router /activity/{id} [get]
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid activity ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	activity, err := ac.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Activity not found",
			"error":   "No activity exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    activity,
	})
}
