package services

import (
	"context"
	"errors"
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

type TimeEntryInput struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
}

// TimerService is the state machine over an owner's time entries. Per
// owner it is either Idle or Running(entry); every path that starts a
// session stops the previous one first, and the stop write completes
// before the start write is issued. Each session change runs inside one
// repository transaction that locks the owner's running entries, so
// concurrent requests serialize per owner; the store's partial unique
// index keeps a second runner out even without a row to lock.
type TimerService struct {
	repo     repositories.TimeEntryRepository
	snapshot *store.Snapshot[models.TimeEntry]
	hooks    activityHooks
}

func NewTimerService(repo repositories.TimeEntryRepository, producer *kafka.Producer, cache *redis.Service) *TimerService {
	return &TimerService{
		repo:     repo,
		snapshot: store.New(func(e models.TimeEntry) uuid.UUID { return e.ID }),
		hooks:    activityHooks{producer: producer, cache: cache},
	}
}

func (s *TimerService) Load(ctx context.Context, ownerID uuid.UUID) ([]models.TimeEntry, error) {
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.Log.Error().Err(err).Str("ownerId", ownerID.String()).Msg("failed to load time entries")
		return nil, err
	}
	s.snapshot.Replace(ownerID, entries)
	return s.snapshot.List(ownerID), nil
}

// Create adds an idle entry: the clock is not started until Start.
func (s *TimerService) Create(ctx context.Context, ownerID uuid.UUID, input TimeEntryInput) (*models.TimeEntry, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}

	now := time.Now().UTC()
	entry := models.TimeEntry{
		ID:          uuid.New(),
		ProjectName: input.ProjectName,
		Description: input.Description,
		StartTime:   now,
		IsRunning:   false,
		CreatedAt:   now,
		UserID:      ownerID,
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}
	s.snapshot.Prepend(ownerID, entry)
	s.hooks.record(ctx, events.TimeEntryCreated, "time_entries", entry.ID, ownerID)
	return &entry, nil
}

// Start begins a session on an existing entry. A running session on any
// other entry is stopped first; stop and start land in the same
// transaction, stop write before start write.
func (s *TimerService) Start(ctx context.Context, ownerID, entryID uuid.UUID) (*models.TimeEntry, error) {
	var entry, stopped *models.TimeEntry
	err := s.repo.SessionTx(ctx, ownerID, func(repo repositories.TimeEntryRepository) error {
		var err error
		entry, err = repo.FindByID(ctx, ownerID, entryID)
		if err != nil {
			return err
		}

		stopped, err = stopRunning(ctx, repo, ownerID, entryID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		entry.StartTime = now
		entry.IsRunning = true
		entry.EndTime = nil
		entry.Duration = nil
		return repo.Update(ctx, entry)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("start timer: %w", err)
	}

	if stopped != nil {
		s.snapshot.Apply(ownerID, *stopped)
		s.hooks.record(ctx, events.TimerStopped, "time_entries", stopped.ID, ownerID)
	}
	s.snapshot.Apply(ownerID, *entry)
	s.hooks.record(ctx, events.TimerStarted, "time_entries", entry.ID, ownerID)
	return entry, nil
}

// Stop ends the owner's running session. Stopping while idle is not an
// error of the machine, but the explicit endpoint reports it so clients
// can resync.
func (s *TimerService) Stop(ctx context.Context, ownerID uuid.UUID) (*models.TimeEntry, error) {
	var stopped *models.TimeEntry
	err := s.repo.SessionTx(ctx, ownerID, func(repo repositories.TimeEntryRepository) error {
		running, err := repo.FindRunning(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrNoActiveSession
			}
			return err
		}
		finishEntry(running, time.Now().UTC())
		if err := repo.Update(ctx, running); err != nil {
			return err
		}
		stopped = running
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoActiveSession) {
			return nil, err
		}
		return nil, fmt.Errorf("stop timer: %w", err)
	}

	s.snapshot.Apply(ownerID, *stopped)
	s.hooks.record(ctx, events.TimerStopped, "time_entries", stopped.ID, ownerID)
	return stopped, nil
}

// QuickStart creates a brand-new entry already running, stopping any
// current session first, all within one transaction.
func (s *TimerService) QuickStart(ctx context.Context, ownerID uuid.UUID, input TimeEntryInput) (*models.TimeEntry, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}

	var entry, stopped *models.TimeEntry
	err := s.repo.SessionTx(ctx, ownerID, func(repo repositories.TimeEntryRepository) error {
		var err error
		stopped, err = stopRunning(ctx, repo, ownerID, uuid.Nil)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		entry = &models.TimeEntry{
			ID:          uuid.New(),
			ProjectName: input.ProjectName,
			Description: input.Description,
			StartTime:   now,
			IsRunning:   true,
			CreatedAt:   now,
			UserID:      ownerID,
		}
		return repo.Create(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("quick start: %w", err)
	}

	if stopped != nil {
		s.snapshot.Apply(ownerID, *stopped)
		s.hooks.record(ctx, events.TimerStopped, "time_entries", stopped.ID, ownerID)
	}
	s.snapshot.Prepend(ownerID, *entry)
	s.hooks.record(ctx, events.TimerStarted, "time_entries", entry.ID, ownerID)
	return entry, nil
}

// Active returns the running entry, or repositories.ErrNotFound when the
// owner is idle.
func (s *TimerService) Active(ctx context.Context, ownerID uuid.UUID) (*models.TimeEntry, error) {
	return s.repo.FindRunning(ctx, ownerID)
}

// Elapsed derives the running seconds of an entry against now.
func Elapsed(entry *models.TimeEntry, now time.Time) int64 {
	if entry == nil || !entry.IsRunning {
		return 0
	}
	elapsed := int64(now.Sub(entry.StartTime) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Watch emits the elapsed seconds of the owner's running session once per
// second. The channel closes when the session stops, the owner is idle,
// or ctx is cancelled; the ticker never outlives the subscription.
func (s *TimerService) Watch(ctx context.Context, ownerID uuid.UUID) <-chan int64 {
	ticks := make(chan int64)
	go func() {
		defer close(ticks)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				running, err := s.repo.FindRunning(ctx, ownerID)
				if err != nil {
					return
				}
				select {
				case ticks <- Elapsed(running, time.Now().UTC()):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ticks
}

func (s *TimerService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.snapshot.Remove(ownerID, id)
	s.hooks.record(ctx, events.TimeEntryDeleted, "time_entries", id, ownerID)
	return nil
}

// stopRunning ends whatever session is active inside the caller's
// transaction, doing nothing when the owner is idle or when the running
// entry is the one about to be restarted (exceptID). Returns the stopped
// entry so the caller can reconcile after commit.
func stopRunning(ctx context.Context, repo repositories.TimeEntryRepository, ownerID, exceptID uuid.UUID) (*models.TimeEntry, error) {
	running, err := repo.FindRunning(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if running.ID == exceptID {
		// Restarting the same entry; the caller resets its clock.
		return nil, nil
	}
	finishEntry(running, time.Now().UTC())
	if err := repo.Update(ctx, running); err != nil {
		return nil, err
	}
	return running, nil
}

func finishEntry(entry *models.TimeEntry, now time.Time) {
	duration := int64(now.Sub(entry.StartTime) / time.Second)
	if duration < 0 {
		duration = 0
	}
	entry.EndTime = &now
	entry.Duration = &duration
	entry.IsRunning = false
}
