package routes

import (
	"pimon/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAPIRoutes(r *gin.Engine, stats *controllers.StatsController, processes *controllers.ProcessController, disk *controllers.DiskController) {
	api := r.Group("/api")
	{
		api.GET("/stats", stats.GetStats)
		api.GET("/history", stats.GetHistory)
		api.GET("/processes", processes.GetTopProcesses)
		api.GET("/disk/directories", disk.GetTopDirectories)
	}
}
