package routes

import (
	"agrivision/internal/controllers"
	"agrivision/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSuggestionRoutes(router *gin.Engine, suggestionController *controllers.SuggestionController) {
	suggestionRoutes := router.Group("/suggestion")
	suggestionRoutes.Use(middleware.AuthMiddleware())
	{
		suggestionRoutes.GET("/user/:user_id", suggestionController.GetSuggestionsByUserID)
		suggestionRoutes.PATCH("/:id/read", suggestionController.MarkSuggestionRead)
	}
}
