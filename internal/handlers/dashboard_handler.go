package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/query"
	"github.com/Anuragkundu/WorkFlowHQ/internal/redis"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

// DashboardStats aggregates the per-collection counters shown on the
// workspace landing page.
type DashboardStats struct {
	Tasks    query.TaskStats    `json:"tasks"`
	Invoices query.InvoiceStats `json:"invoices"`
	Time     query.TimeStats    `json:"time"`
	Notes    int                `json:"notes"`
}

type DashboardHandler struct {
	notes    *services.NoteService
	tasks    *services.TaskService
	timer    *services.TimerService
	invoices *services.InvoiceService
	cache    *redis.Service
}

func NewDashboardHandler(notes *services.NoteService, tasks *services.TaskService, timer *services.TimerService, invoices *services.InvoiceService, cache *redis.Service) *DashboardHandler {
	return &DashboardHandler{
		notes:    notes,
		tasks:    tasks,
		timer:    timer,
		invoices: invoices,
		cache:    cache,
	}
}

// Stats serves the aggregate counters, via the Redis cache when warm.
// Activity events invalidate the cached copy, so a miss recomputes from
// the store and refills it.
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if h.cache != nil {
		var cached DashboardStats
		hit, err := h.cache.GetStats(ctx, userID.String(), &cached)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("stats cache read failed")
		}
		if hit {
			c.JSON(http.StatusOK, responses.NewSuccessResponse("Dashboard stats retrieved", cached))
			return
		}
	}

	notes, err := h.notes.Load(ctx, userID)
	if err != nil {
		respondError(c, err, "load dashboard stats")
		return
	}
	tasks, err := h.tasks.Load(ctx, userID)
	if err != nil {
		respondError(c, err, "load dashboard stats")
		return
	}
	entries, err := h.timer.Load(ctx, userID)
	if err != nil {
		respondError(c, err, "load dashboard stats")
		return
	}
	invoices, err := h.invoices.Load(ctx, userID)
	if err != nil {
		respondError(c, err, "load dashboard stats")
		return
	}

	now := time.Now().UTC()
	stats := DashboardStats{
		Tasks:    query.ComputeTaskStats(tasks, now),
		Invoices: query.ComputeInvoiceStats(invoices),
		Time:     query.ComputeTimeStats(entries, now),
		Notes:    len(notes),
	}

	if h.cache != nil {
		if err := h.cache.SetStats(ctx, userID.String(), stats); err != nil {
			logger.Log.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Dashboard stats retrieved", stats))
}
