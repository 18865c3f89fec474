package controllers

import (
	"net/http"

	"agrivision/internal/repository"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	repo repository.CarbonPracticeRepository
}

func NewPracticeController(repo repository.CarbonPracticeRepository) *PracticeController {
	return &PracticeController{repo: repo}
}

// GetPractices godoc
// @Summary Get the climate-smart practice catalog
// @Tags practice
// @Produce json
// @Success 200 {object} map[string]interface{} "Practices retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve practices"
// @Router /practices [get]
func (pc *PracticeController) GetPractices(c *gin.Context) {
	practices, err := pc.repo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve practices",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Practices retrieved successfully",
		"data":    practices,
	})
}
