package controllers

import (
	"log"
	"net/http"
	"strconv"

	"agrivision/internal/models"
	"agrivision/internal/mq"
	"agrivision/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminController is the manual review surface for legacy pending activities.
// Approval publishes the same activity event the submission path publishes,
// so both approval paths funnel through one aggregation entry point.
type AdminController struct {
	repo      repository.ActivityRepository
	publisher mq.ActivityPublisher
}

func NewAdminController(repo repository.ActivityRepository, publisher mq.ActivityPublisher) *AdminController {
	return &AdminController{repo: repo, publisher: publisher}
}

// GetPendingActivities godoc
// @Summary List activities awaiting manual review
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Pending activities retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve activities"
// @Router /admin/activity/pending [get]
func (ac *AdminController) GetPendingActivities(c *gin.Context) {
	activities, err := ac.repo.FindByStatus(models.ActivityStatusPending)
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
		"message": "Pending activities retrieved successfully",
		"data":    activities,
	})
}

// ApproveActivity godoc
// @Summary Approve a still-pending activity
// @Description Flip a pending activity to Approved and hand it to the aggregation pipeline
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity approved"
// @Failure 400 {object} map[string]interface{} "Invalid activity ID"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 409 {object} map[string]interface{} "Activity is not pending"
// @Router /admin/activity/{id}/approve [put]
func (ac *AdminController) ApproveActivity(c *gin.Context) {
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

	approved, err := ac.repo.ApproveIfPending(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to approve activity",
			"error":   err.Error(),
		})
		return
	}
	if !approved {
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Activity is not pending",
			"error":   "Only pending activities can be approved",
		})
		return
	}

	activity.Status = models.ActivityStatusApproved
	if err := ac.publisher.PublishActivityCreated(models.EventFromActivity(activity)); err != nil {
		// The reconciliation sweep republishes unaggregated approvals.
		log.Printf("Failed to publish admin-approved activity %d: %v", activity.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity approved",
		"data":    activity,
	})
}
