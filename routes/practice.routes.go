package routes

import (
	"agrivision/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPracticeRoutes(router *gin.Engine, practiceController *controllers.PracticeController) {
	router.GET("/practices", practiceController.GetPractices)
}
