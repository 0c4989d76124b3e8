package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/repositories"
)

func newNoteServiceForTest() (*NoteService, *fakeNoteRepo) {
	repo := newFakeNoteRepo()
	return NewNoteService(repo, nil, nil), repo
}

func TestNoteCreateRequiresTitle(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()

	_, err := svc.Create(context.Background(), owner, NoteInput{Title: "   "})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if svc.snapshot.Len(owner) != 0 {
		t.Error("snapshot changed on rejected create")
	}
}

func TestNoteCreatePrependsSnapshot(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()

	first, err := svc.Create(context.Background(), owner, NoteInput{Title: "first"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(context.Background(), owner, NoteInput{Title: "second"})
	if err != nil {
		t.Fatal(err)
	}

	notes := svc.snapshot.List(owner)
	if len(notes) != 2 {
		t.Fatalf("snapshot has %d notes, want 2", len(notes))
	}
	if notes[0].ID != second.ID || notes[1].ID != first.ID {
		t.Error("snapshot is not newest first")
	}
}

// A failed remote write must leave the snapshot exactly as it was.
func TestNoteCreateFailureLeavesSnapshotUntouched(t *testing.T) {
	svc, repo := newNoteServiceForTest()
	owner := uuid.New()

	if _, err := svc.Create(context.Background(), owner, NoteInput{Title: "kept"}); err != nil {
		t.Fatal(err)
	}

	repo.fail = true
	if _, err := svc.Create(context.Background(), owner, NoteInput{Title: "lost"}); err == nil {
		t.Fatal("expected create to fail")
	}

	notes := svc.snapshot.List(owner)
	if len(notes) != 1 || notes[0].Title != "kept" {
		t.Errorf("snapshot = %+v, want the single pre-failure note", notes)
	}
}

func TestNoteUpdatePatchSemantics(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()

	note, err := svc.Create(context.Background(), owner, NoteInput{Title: "title", Content: "content"})
	if err != nil {
		t.Fatal(err)
	}

	newTitle := "renamed"
	updated, err := svc.Update(context.Background(), owner, note.ID, NotePatch{Title: &newTitle})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != "renamed" {
		t.Errorf("Title = %q, want renamed", updated.Title)
	}
	// Nil content field leaves the existing content alone.
	if updated.Content != "content" {
		t.Errorf("Content = %q, want content", updated.Content)
	}
	if !updated.UpdatedAt.After(note.CreatedAt) && !updated.UpdatedAt.Equal(note.CreatedAt) {
		t.Error("UpdatedAt not refreshed")
	}
}

func TestNoteUpdateRejectsBlankTitle(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()

	note, err := svc.Create(context.Background(), owner, NoteInput{Title: "title"})
	if err != nil {
		t.Fatal(err)
	}

	blank := ""
	if _, err := svc.Update(context.Background(), owner, note.ID, NotePatch{Title: &blank}); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestNoteUpdateUnknownID(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()

	title := "anything"
	_, err := svc.Update(context.Background(), owner, uuid.New(), NotePatch{Title: &title})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestNoteDeleteRemovesFromSnapshot(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()

	note, err := svc.Create(context.Background(), owner, NoteInput{Title: "gone soon"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), owner, note.ID); err != nil {
		t.Fatal(err)
	}
	if svc.snapshot.Len(owner) != 0 {
		t.Error("snapshot still holds the deleted note")
	}
}

func TestNoteOwnerScoping(t *testing.T) {
	svc, _ := newNoteServiceForTest()
	owner := uuid.New()
	stranger := uuid.New()

	note, err := svc.Create(context.Background(), owner, NoteInput{Title: "private"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), stranger, note.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("stranger delete err = %v, want ErrNotFound", err)
	}
}
