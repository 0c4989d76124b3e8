package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
)

var errStoreDown = errors.New("store unavailable")

// fakeNoteRepo is an in-memory NoteRepository. Setting fail makes every
// write fail, for exercising the write-then-apply paths.
type fakeNoteRepo struct {
	notes map[uuid.UUID]models.Note
	fail  bool
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]models.Note)}
}

func (r *fakeNoteRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Note, error) {
	if r.fail {
		return nil, errStoreDown
	}
	var result []models.Note
	for _, n := range r.notes {
		if n.UserID == ownerID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *fakeNoteRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Note, error) {
	n, ok := r.notes[id]
	if !ok || n.UserID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (r *fakeNoteRepo) Create(_ context.Context, note *models.Note) error {
	if r.fail {
		return errStoreDown
	}
	r.notes[note.ID] = *note
	return nil
}

func (r *fakeNoteRepo) Update(_ context.Context, note *models.Note) error {
	if r.fail {
		return errStoreDown
	}
	r.notes[note.ID] = *note
	return nil
}

func (r *fakeNoteRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	if r.fail {
		return errStoreDown
	}
	n, ok := r.notes[id]
	if !ok || n.UserID != ownerID {
		return repositories.ErrNotFound
	}
	delete(r.notes, id)
	return nil
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]models.Task
	fail  bool
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]models.Task)}
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	if r.fail {
		return nil, errStoreDown
	}
	var result []models.Task
	for _, t := range r.tasks {
		if t.UserID == ownerID {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	if r.fail {
		return errStoreDown
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	if r.fail {
		return errStoreDown
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return repositories.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]models.Invoice
	fail     bool
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]models.Invoice)}
}

func (r *fakeInvoiceRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Invoice, error) {
	if r.fail {
		return nil, errStoreDown
	}
	var result []models.Invoice
	for _, inv := range r.invoices {
		if inv.UserID == ownerID {
			result = append(result, inv)
		}
	}
	return result, nil
}

func (r *fakeInvoiceRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok || inv.UserID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) Create(_ context.Context, invoice *models.Invoice) error {
	if r.fail {
		return errStoreDown
	}
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, invoice *models.Invoice) error {
	if r.fail {
		return errStoreDown
	}
	r.invoices[invoice.ID] = *invoice
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	inv, ok := r.invoices[id]
	if !ok || inv.UserID != ownerID {
		return repositories.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

// fakeTimeEntryRepo records the order of start/stop writes so sequencing
// can be asserted. SessionTx serializes callers with a mutex, the way
// the real repository serializes them with a locked transaction.
type fakeTimeEntryRepo struct {
	mu      sync.Mutex
	entries map[uuid.UUID]models.TimeEntry
	writes  []uuid.UUID
	fail    bool
}

func newFakeTimeEntryRepo() *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{entries: make(map[uuid.UUID]models.TimeEntry)}
}

func (r *fakeTimeEntryRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.TimeEntry, error) {
	if r.fail {
		return nil, errStoreDown
	}
	var result []models.TimeEntry
	for _, e := range r.entries {
		if e.UserID == ownerID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeTimeEntryRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*models.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok || e.UserID != ownerID {
		return nil, repositories.ErrNotFound
	}
	return &e, nil
}

func (r *fakeTimeEntryRepo) FindRunning(_ context.Context, ownerID uuid.UUID) (*models.TimeEntry, error) {
	for _, e := range r.entries {
		if e.UserID == ownerID && e.IsRunning {
			entry := e
			return &entry, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeTimeEntryRepo) Create(_ context.Context, entry *models.TimeEntry) error {
	if r.fail {
		return errStoreDown
	}
	r.entries[entry.ID] = *entry
	r.writes = append(r.writes, entry.ID)
	return nil
}

func (r *fakeTimeEntryRepo) Update(_ context.Context, entry *models.TimeEntry) error {
	if r.fail {
		return errStoreDown
	}
	r.entries[entry.ID] = *entry
	r.writes = append(r.writes, entry.ID)
	return nil
}

func (r *fakeTimeEntryRepo) SessionTx(_ context.Context, _ uuid.UUID, fn func(repositories.TimeEntryRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r)
}

func (r *fakeTimeEntryRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	e, ok := r.entries[id]
	if !ok || e.UserID != ownerID {
		return repositories.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}
