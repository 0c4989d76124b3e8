package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
)

type TimeEntryRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.TimeEntry, error)
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.TimeEntry, error)
	// FindRunning returns the owner's single running entry, or ErrNotFound
	// when the owner is idle.
	FindRunning(ctx context.Context, ownerID uuid.UUID) (*models.TimeEntry, error)
	Create(ctx context.Context, entry *models.TimeEntry) error
	Update(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	// SessionTx runs fn against a repository bound to one transaction,
	// after taking an update lock on the owner's running entries.
	// Concurrent session changes for the same owner serialize here; the
	// partial unique index on (user_id) WHERE is_running backstops the
	// case where no row exists to lock.
	SessionTx(ctx context.Context, ownerID uuid.UUID, fn func(TimeEntryRepository) error) error
}

type timeEntryRepository struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.TimeEntry, error) {
	var entries []models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&entries).Error
	return entries, err
}

func (r *timeEntryRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepository) FindRunning(ctx context.Context, ownerID uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_running = ?", ownerID, true).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timeEntryRepository) Create(ctx context.Context, entry *models.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timeEntryRepository) Update(ctx context.Context, entry *models.TimeEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *timeEntryRepository) SessionTx(ctx context.Context, ownerID uuid.UUID, fn func(TimeEntryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked []models.TimeEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND is_running = ?", ownerID, true).
			Find(&locked).Error
		if err != nil {
			return err
		}
		return fn(&timeEntryRepository{db: tx})
	})
}

func (r *timeEntryRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.TimeEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
