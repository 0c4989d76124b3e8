package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/query"
	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

type TimerHandler struct {
	timer *services.TimerService
}

func NewTimerHandler(timer *services.TimerService) *TimerHandler {
	return &TimerHandler{timer: timer}
}

func (h *TimerHandler) ListTimeEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.timer.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load time entries")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Time entries retrieved successfully", entries))
}

// CreateTimeEntry records an entry without starting its clock.
func (h *TimerHandler) CreateTimeEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.TimeEntryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	entry, err := h.timer.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "create time entry")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Time entry created successfully", entry))
}

// QuickStart creates a new entry that is already running, displacing any
// current session.
func (h *TimerHandler) QuickStart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.TimeEntryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	entry, err := h.timer.QuickStart(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "start timer")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Timer started", entry))
}

func (h *TimerHandler) StartTimer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "entryId")
	if !ok {
		return
	}

	entry, err := h.timer.Start(c.Request.Context(), userID, entryID)
	if err != nil {
		respondError(c, err, "start timer")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Timer started", entry))
}

func (h *TimerHandler) StopTimer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.timer.Stop(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "stop timer")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Timer stopped", entry))
}

// ActiveSession reports the running entry with its live elapsed seconds,
// or an idle marker when nothing is running.
func (h *TimerHandler) ActiveSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entry, err := h.timer.Active(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusOK, responses.NewSuccessResponse("No active session", gin.H{"active": false}))
			return
		}
		respondError(c, err, "load active session")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Active session", gin.H{
		"active":          true,
		"entry":           entry,
		"elapsed_seconds": services.Elapsed(entry, time.Now().UTC()),
	}))
}

// StreamActiveSession pushes the elapsed seconds of the running session
// over server-sent events, one tick per second, until the session ends or
// the client disconnects.
func (h *TimerHandler) StreamActiveSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticks := h.timer.Watch(c.Request.Context(), userID)
	c.Stream(func(w io.Writer) bool {
		elapsed, open := <-ticks
		if !open {
			return false
		}
		c.SSEvent("elapsed", gin.H{"elapsed_seconds": elapsed})
		return true
	})
}

func (h *TimerHandler) TimeStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.timer.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load time entries")
		return
	}

	stats := query.ComputeTimeStats(entries, time.Now().UTC())
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Time stats computed", stats))
}

func (h *TimerHandler) DeleteTimeEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(c, "entryId")
	if !ok {
		return
	}

	if err := h.timer.Delete(c.Request.Context(), userID, entryID); err != nil {
		respondError(c, err, "delete time entry")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Time entry deleted successfully", nil))
}
