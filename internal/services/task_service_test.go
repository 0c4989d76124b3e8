package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Anuragkundu/WorkFlowHQ/internal/models"
)

func newTaskServiceForTest() (*TaskService, *fakeTaskRepo) {
	repo := newFakeTaskRepo()
	return NewTaskService(repo, nil, nil), repo
}

func TestTaskCreateDefaultsPriority(t *testing.T) {
	svc, _ := newTaskServiceForTest()
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, TaskInput{Title: "todo"})
	if err != nil {
		t.Fatal(err)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("Priority = %q, want medium", task.Priority)
	}
	if task.Completed {
		t.Error("new task should start pending")
	}
}

func TestTaskCreateRejectsBadPriority(t *testing.T) {
	svc, _ := newTaskServiceForTest()

	_, err := svc.Create(context.Background(), uuid.New(), TaskInput{Title: "todo", Priority: "urgent"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestTaskToggle(t *testing.T) {
	svc, _ := newTaskServiceForTest()
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, TaskInput{Title: "todo"})
	if err != nil {
		t.Fatal(err)
	}

	toggled, err := svc.Toggle(context.Background(), owner, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !toggled.Completed {
		t.Error("first toggle should complete the task")
	}
	if toggled.UpdatedAt.Before(task.CreatedAt) {
		t.Error("UpdatedAt moved backwards")
	}

	toggled, err = svc.Toggle(context.Background(), owner, task.ID)
	if err != nil {
		t.Fatal(err)
	}
	if toggled.Completed {
		t.Error("second toggle should reopen the task")
	}
}

func TestTaskUpdateClearsDueDate(t *testing.T) {
	svc, _ := newTaskServiceForTest()
	owner := uuid.New()

	due := "2026-09-15"
	task, err := svc.Create(context.Background(), owner, TaskInput{Title: "todo", DueDate: &due})
	if err != nil {
		t.Fatal(err)
	}
	if task.DueDate == nil || *task.DueDate != due {
		t.Fatalf("DueDate = %v, want %s", task.DueDate, due)
	}

	// An empty string clears the deadline; a nil field leaves it alone.
	clear := ""
	updated, err := svc.Update(context.Background(), owner, task.ID, TaskPatch{DueDate: &clear})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DueDate != nil {
		t.Errorf("DueDate = %v, want nil", updated.DueDate)
	}

	title := "renamed"
	updated, err = svc.Update(context.Background(), owner, task.ID, TaskPatch{Title: &title})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DueDate != nil {
		t.Error("nil patch field should not resurrect the due date")
	}
}

func TestTaskUpdateFailureLeavesSnapshotUntouched(t *testing.T) {
	svc, repo := newTaskServiceForTest()
	owner := uuid.New()

	task, err := svc.Create(context.Background(), owner, TaskInput{Title: "original"})
	if err != nil {
		t.Fatal(err)
	}

	repo.fail = true
	title := "never applied"
	if _, err := svc.Update(context.Background(), owner, task.ID, TaskPatch{Title: &title}); err == nil {
		t.Fatal("expected update to fail")
	}

	got, ok := svc.snapshot.Get(owner, task.ID)
	if !ok || got.Title != "original" {
		t.Errorf("snapshot task = %+v, want the pre-failure state", got)
	}
}
