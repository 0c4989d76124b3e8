package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/query"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

type NoteHandler struct {
	notes *services.NoteService
}

func NewNoteHandler(notes *services.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// ListNotes returns the owner's notes, optionally filtered by ?search=.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := h.notes.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load notes")
		return
	}

	filtered := query.SearchNotes(notes, c.Query("search"))
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Notes retrieved successfully", filtered))
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	note, err := h.notes.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "create note")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Note created successfully", note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	var req services.NotePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	note, err := h.notes.Update(c.Request.Context(), userID, noteID, req)
	if err != nil {
		respondError(c, err, "update note")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Note updated successfully", note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	if err := h.notes.Delete(c.Request.Context(), userID, noteID); err != nil {
		respondError(c, err, "delete note")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Note deleted successfully", nil))
}
