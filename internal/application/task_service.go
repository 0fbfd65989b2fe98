package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
	"github.com/tugaskita/tugaskita/internal/shared"
)

// TaskService is the access-controlled CRUD surface over task records.
// Every operation routes through the authorization policy before touching
// storage.
type TaskService struct {
	Tasks    repository.TaskRepository
	Activity *ActivityRecorder
	Logger   *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, activity *ActivityRecorder, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Activity: activity, Logger: logger}
}

// TaskDraft carries the client-supplied fields of a new task. Owner email,
// id, and creation timestamp are always server-assigned.
type TaskDraft struct {
	OwnerName   string
	TaskDate    time.Time
	Title       string
	Subject     string
	Description string
	DueDate     time.Time
	Status      string
}

// TaskReplacement carries the full mutable field set for an update. All
// fields replace the stored values; there is no partial patch.
type TaskReplacement struct {
	Title       string
	Subject     string
	Description string
	DueDate     time.Time
	Status      string
}

// Create persists a task for the caller. Only the "user" role may create;
// admins get Forbidden (creation does not mask, existence is not sensitive
// here).
func (s *TaskService) Create(ctx context.Context, caller *entity.User, draft TaskDraft) (*entity.Task, error) {
	if !CanCreateTask(caller) {
		return nil, shared.ErrForbidden
	}
	status := entity.TaskStatus(draft.Status)
	if draft.Status == "" {
		status = entity.StatusPending
	}
	if !status.Valid() {
		return nil, shared.ErrInvalidInput
	}
	t := &entity.Task{
		ID:          uuid.NewString(),
		OwnerEmail:  caller.Email,
		OwnerName:   draft.OwnerName,
		TaskDate:    draft.TaskDate,
		Title:       draft.Title,
		Subject:     draft.Subject,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Activity.Record(ctx, "create_task", caller.Email, map[string]any{
		"task_id":     t.ID,
		"owner_email": t.OwnerEmail,
		"owner_name":  t.OwnerName,
		"task_date":   t.TaskDate,
		"title":       t.Title,
		"subject":     t.Subject,
		"description": t.Description,
		"due_date":    t.DueDate,
		"status":      t.Status.String(),
		"created_at":  t.CreatedAt,
	})
	return t, nil
}

// List returns the caller's visible tasks in creation order: all of them
// for admins, own tasks only for everyone else.
func (s *TaskService) List(ctx context.Context, caller *entity.User) ([]entity.Task, error) {
	tasks, err := s.Tasks.List(ctx, ScopeListing(caller))
	if err != nil {
		return nil, err
	}
	s.Activity.Record(ctx, "list_tasks", caller.Email, map[string]any{
		"role": caller.Role.String(),
	})
	return tasks, nil
}

// Update replaces the mutable fields of a task. A task that is absent and a
// task the caller may not touch yield the same NotFound, so existence is
// never leaked.
func (s *TaskService) Update(ctx context.Context, caller *entity.User, taskID string, repl TaskReplacement) (*entity.Task, error) {
	t, err := s.lookupForWrite(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}
	status := entity.TaskStatus(repl.Status)
	if !status.Valid() {
		return nil, shared.ErrInvalidInput
	}
	t.Title = repl.Title
	t.Subject = repl.Subject
	t.Description = repl.Description
	t.DueDate = repl.DueDate
	t.Status = status
	if err := s.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	s.Activity.Record(ctx, "update_task", caller.Email, map[string]any{
		"task_id":     t.ID,
		"title":       t.Title,
		"subject":     t.Subject,
		"description": t.Description,
		"due_date":    t.DueDate,
		"status":      t.Status.String(),
	})
	return t, nil
}

// Delete removes a task under the same NotFound masking as Update.
func (s *TaskService) Delete(ctx context.Context, caller *entity.User, taskID string) error {
	if _, err := s.lookupForWrite(ctx, caller, taskID); err != nil {
		return err
	}
	if err := s.Tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	s.Activity.Record(ctx, "delete_task", caller.Email, map[string]any{
		"task_id": taskID,
	})
	return nil
}

func (s *TaskService) lookupForWrite(ctx context.Context, caller *entity.User, taskID string) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if !CanAccessTask(caller, t) {
		return nil, shared.ErrNotFound
	}
	return t, nil
}
