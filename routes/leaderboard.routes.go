package routes

import (
	"agrivision/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterLeaderboardRoutes(router *gin.Engine, leaderboardController *controllers.LeaderboardController) {
	router.GET("/leaderboard", leaderboardController.GetLeaderboard)
}
