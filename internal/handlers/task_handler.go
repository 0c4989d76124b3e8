package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Anuragkundu/WorkFlowHQ/internal/query"
	"github.com/Anuragkundu/WorkFlowHQ/internal/services"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/responses"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasks returns the owner's tasks filtered by ?search= and
// ?status=all|pending|completed.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load tasks")
		return
	}

	status := query.TaskStatus(c.DefaultQuery("status", string(query.TaskStatusAll)))
	filtered := query.FilterTasks(tasks, c.Query("search"), status)
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Tasks retrieved successfully", filtered))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.TaskInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "create task")
		return
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse("Task created successfully", task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	var req services.TaskPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), userID, taskID, req)
	if err != nil {
		respondError(c, err, "update task")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Task updated successfully", task))
}

// ToggleTask flips the completed flag.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	task, err := h.tasks.Toggle(c.Request.Context(), userID, taskID)
	if err != nil {
		respondError(c, err, "toggle task")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Task toggled successfully", task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	if err := h.tasks.Delete(c.Request.Context(), userID, taskID); err != nil {
		respondError(c, err, "delete task")
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Task deleted successfully", nil))
}

func (h *TaskHandler) TaskStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.Load(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "load tasks")
		return
	}

	stats := query.ComputeTaskStats(tasks, time.Now().UTC())
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Task stats computed", stats))
}
