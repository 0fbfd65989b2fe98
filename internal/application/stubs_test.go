package application_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
	"github.com/tugaskita/tugaskita/internal/shared"
)

// In-memory repositories mirroring the store semantics the services rely
// on: unique email on users, single-record atomicity on tasks, append-only
// activity.

type memUsers struct {
	byEmail map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{byEmail: map[string]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return shared.ErrDuplicateIdentity
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) delete(email string) {
	delete(m.byEmail, email)
}

type memTasks struct {
	order []string
	byID  map[string]*entity.Task
}

func newMemTasks() *memTasks {
	return &memTasks{byID: map[string]*entity.Task{}}
}

func (m *memTasks) Create(_ context.Context, t *entity.Task) error {
	cp := *t
	m.byID[t.ID] = &cp
	m.order = append(m.order, t.ID)
	return nil
}

func (m *memTasks) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := m.byID[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memTasks) List(_ context.Context, scope repository.ListScope) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	for _, id := range m.order {
		t := m.byID[id]
		if scope.All || t.OwnerEmail == scope.OwnerEmail {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTasks) Update(_ context.Context, t *entity.Task) error {
	if _, ok := m.byID[t.ID]; !ok {
		return shared.ErrNotFound
	}
	cp := *t
	m.byID[t.ID] = &cp
	return nil
}

func (m *memTasks) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

type memActivity struct {
	entries []entity.ActivityEntry
}

func (m *memActivity) Append(_ context.Context, e *entity.ActivityEntry) error {
	e.ID = int64(len(m.entries) + 1)
	e.CreatedAt = time.Now().UTC()
	m.entries = append(m.entries, *e)
	return nil
}

func (m *memActivity) byAction(action string) []entity.ActivityEntry {
	var out []entity.ActivityEntry
	for _, e := range m.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

func newRecorder(act *memActivity) *application.ActivityRecorder {
	return application.NewActivityRecorder(act, nil, nil)
}

var (
	_ repository.UserRepository     = (*memUsers)(nil)
	_ repository.TaskRepository     = (*memTasks)(nil)
	_ repository.ActivityRepository = (*memActivity)(nil)
)
