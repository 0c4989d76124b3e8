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

type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NotePatch carries a partial update; nil fields are left untouched.
type NotePatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NoteService struct {
	repo     repositories.NoteRepository
	snapshot *store.Snapshot[models.Note]
	hooks    activityHooks
}

func NewNoteService(repo repositories.NoteRepository, producer *kafka.Producer, cache *redis.Service) *NoteService {
	return &NoteService{
		repo:     repo,
		snapshot: store.New(func(n models.Note) uuid.UUID { return n.ID }),
		hooks:    activityHooks{producer: producer, cache: cache},
	}
}

// Load refreshes the owner's snapshot from the store, most recent first.
// On failure the previous snapshot stays as it was.
func (s *NoteService) Load(ctx context.Context, ownerID uuid.UUID) ([]models.Note, error) {
	notes, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("ownerId", ownerID.String()).Msg("failed to load notes")
		return nil, err
	}
	s.snapshot.Replace(ownerID, notes)
	return s.snapshot.List(ownerID), nil
}

func (s *NoteService) Create(ctx context.Context, ownerID uuid.UUID, input NoteInput) (*models.Note, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	now := time.Now().UTC()
	note := models.Note{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    ownerID,
	}

	if err := s.repo.Create(ctx, &note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	s.snapshot.Prepend(ownerID, note)
	s.hooks.record(ctx, events.NoteCreated, "notes", note.ID, ownerID)
	return &note, nil
}

func (s *NoteService) Update(ctx context.Context, ownerID, id uuid.UUID, patch NotePatch) (*models.Note, error) {
	note, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	note.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	s.snapshot.Apply(ownerID, *note)
	s.hooks.record(ctx, events.NoteUpdated, "notes", note.ID, ownerID)
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.snapshot.Remove(ownerID, id)
	s.hooks.record(ctx, events.NoteDeleted, "notes", id, ownerID)
	return nil
}
