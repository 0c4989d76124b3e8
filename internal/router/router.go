package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/handlers"
	"github.com/Anuragkundu/WorkFlowHQ/internal/middleware"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
)

// Handlers bundles everything SetupRouter mounts under /api/v1.
type Handlers struct {
	Notes     *handlers.NoteHandler
	Tasks     *handlers.TaskHandler
	Timer     *handlers.TimerHandler
	Invoices  *handlers.InvoiceHandler
	Dashboard *handlers.DashboardHandler
}

func SetupRouter(router *gin.Engine, userService *services.UserService, h Handlers) {

	//v1 api
	v1 := router.Group("/api/v1")

	protectedRoutes := v1.Group("/")
	protectedRoutes.Use(middleware.AuthMiddleware(userService))

	NoteRoutes(protectedRoutes, h.Notes)
	TaskRoutes(protectedRoutes, h.Tasks)
	TimerRoutes(protectedRoutes, h.Timer)
	InvoiceRoutes(protectedRoutes, h.Invoices)

	protectedRoutes.GET("/dashboard/stats", h.Dashboard.Stats)
}
