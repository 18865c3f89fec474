package routes

import (
	"agrivision/internal/controllers"
	"agrivision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, profileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware())
	{
		profileRoutes.GET("/:user_id", profileController.GetProfileByUserID)
		profileRoutes.PUT("/", profileController.SaveProfile)
	}
}
