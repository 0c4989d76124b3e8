package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/handlers"
)

// NoteRoutes defines routes for note management
func NoteRoutes(rg *gin.RouterGroup, noteHandler *handlers.NoteHandler) {
	notes := rg.Group("/notes")
	{
		notes.GET("", noteHandler.ListNotes)
		notes.POST("", noteHandler.CreateNote)
		notes.PUT("/:noteId", noteHandler.UpdateNote)
		notes.DELETE("/:noteId", noteHandler.DeleteNote)
	}
}
