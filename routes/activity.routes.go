package routes

import (
	"agrivision/internal/controllers"
	"agrivision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/activity")
	activityRoutes.Use(middleware.AuthMiddleware())
	{
		activityRoutes.POST("/", activityController.SubmitActivity)
		activityRoutes.GET("/user/:user_id", activityController.GetActivitiesByUserID)
		activityRoutes.GET("/:id", activityController.GetActivityByID)
	}
}
