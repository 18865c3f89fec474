package routes

import (
	"agrivision/internal/controllers"
	"agrivision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(router *gin.Engine, adminController *controllers.AdminController) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminRoutes.GET("/activity/pending", adminController.GetPendingActivities)
		adminRoutes.PUT("/activity/:id/approve", adminController.ApproveActivity)
	}
}
