package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/events"
	"github.com/Anuragkundu/WorkFlowHQ/internal/kafka"
	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
	"github.com/Anuragkundu/WorkFlowHQ/internal/redis"
	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
	"github.com/Anuragkundu/WorkFlowHQ/internal/store"
	"github.com/Anuragkundu/WorkFlowHQ/pkg/logger"
)

type TaskInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    models.Priority `json:"priority"`
	DueDate     *string         `json:"due_date"`
}

type TaskPatch struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Priority    *models.Priority `json:"priority"`
	DueDate     *string          `json:"due_date"`
}

type TaskService struct {
	repo     repositories.TaskRepository
	snapshot *store.Snapshot[models.Task]
	hooks    activityHooks
}

func NewTaskService(repo repositories.TaskRepository, producer *kafka.Producer, cache *redis.Service) *TaskService {
	return &TaskService{
		repo:     repo,
		snapshot: store.New(func(t models.Task) uuid.UUID { return t.ID }),
		hooks:    activityHooks{producer: producer, cache: cache},
	}
}

func (s *TaskService) Load(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("ownerId", ownerID.String()).Msg("failed to load tasks")
		return nil, err
	}
	s.snapshot.Replace(ownerID, tasks)
	return s.snapshot.List(ownerID), nil
}

func (s *TaskService) Create(ctx context.Context, ownerID uuid.UUID, input TaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
		Completed:   false,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      ownerID,
	}

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	s.snapshot.Prepend(ownerID, task)
	s.hooks.record(ctx, events.TaskCreated, "tasks", task.ID, ownerID)
	return &task, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, id uuid.UUID, patch TaskPatch) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return nil, fmt.Errorf("%w: priority must be low, medium or high", ErrValidation)
		}
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			task.DueDate = nil
		} else {
			task.DueDate = patch.DueDate
		}
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	s.snapshot.Apply(ownerID, *task)
	s.hooks.record(ctx, events.TaskUpdated, "tasks", task.ID, ownerID)
	return task, nil
}

// Toggle flips the completed flag and refreshes updated_at.
func (s *TaskService) Toggle(ctx context.Context, ownerID, id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	s.snapshot.Apply(ownerID, *task)
	s.hooks.record(ctx, events.TaskToggled, "tasks", task.ID, ownerID)
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.snapshot.Remove(ownerID, id)
	s.hooks.record(ctx, events.TaskDeleted, "tasks", id, ownerID)
	return nil
}
