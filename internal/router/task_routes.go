package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/handlers"
)

// TaskRoutes defines routes for task management
func TaskRoutes(rg *gin.RouterGroup, taskHandler *handlers.TaskHandler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/stats", taskHandler.TaskStats)
		tasks.PUT("/:taskId", taskHandler.UpdateTask)
		tasks.PATCH("/:taskId/toggle", taskHandler.ToggleTask)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)
	}
}
