package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/handlers"
)

// TimerRoutes defines routes for time tracking
func TimerRoutes(rg *gin.RouterGroup, timerHandler *handlers.TimerHandler) {
	entries := rg.Group("/time-entries")
	{
		entries.GET("", timerHandler.ListTimeEntries)
		entries.POST("", timerHandler.CreateTimeEntry)
		entries.POST("/quick-start", timerHandler.QuickStart)
		entries.POST("/stop", timerHandler.StopTimer)
		entries.GET("/active", timerHandler.ActiveSession)
		entries.GET("/active/stream", timerHandler.StreamActiveSession)
		entries.GET("/stats", timerHandler.TimeStats)
		entries.POST("/:entryId/start", timerHandler.StartTimer)
		entries.DELETE("/:entryId", timerHandler.DeleteTimeEntry)
	}
}
