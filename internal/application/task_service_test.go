package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tugaskita/tugaskita/internal/application"
	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/shared"
)

var (
	owner   = &entity.User{Email: "user1@x.com", Name: "User One", Role: entity.RoleUser}
	other   = &entity.User{Email: "user2@x.com", Name: "User Two", Role: entity.RoleUser}
	admin   = &entity.User{Email: "admin@x.com", Name: "Admin", Role: entity.RoleAdmin}
	someDay = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

func newTaskService() (*application.TaskService, *memTasks, *memActivity) {
	tasks := newMemTasks()
	act := &memActivity{}
	return application.NewTaskService(tasks, newRecorder(act), nil), tasks, act
}

func draft(title string) application.TaskDraft {
	return application.TaskDraft{
		OwnerName:   "User One",
		TaskDate:    someDay,
		Title:       title,
		Subject:     "Math",
		Description: "chapter 3 exercises",
		DueDate:     someDay.Add(72 * time.Hour),
		Status:      "Pending",
	}
}

func TestCreateAssignsServerFields(t *testing.T) {
	svc, _, act := newTaskService()

	created, err := svc.Create(context.Background(), owner, draft("Homework"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, owner.Email, created.OwnerEmail)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, entity.StatusPending, created.Status)

	require.Len(t, act.byAction("create_task"), 1)
	assert.Equal(t, owner.Email, act.byAction("create_task")[0].ActorEmail)
}

func TestCreateDefaultsStatusPending(t *testing.T) {
	svc, _, _ := newTaskService()

	d := draft("Homework")
	d.Status = ""
	created, err := svc.Create(context.Background(), owner, d)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, created.Status)
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	svc, _, _ := newTaskService()

	d := draft("Homework")
	d.Status = "Almost"
	_, err := svc.Create(context.Background(), owner, d)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestAdminCannotCreate(t *testing.T) {
	svc, _, act := newTaskService()

	_, err := svc.Create(context.Background(), admin, draft("Admin task"))
	assert.ErrorIs(t, err, shared.ErrForbidden)
	assert.Empty(t, act.byAction("create_task"))
}

func TestListScoping(t *testing.T) {
	svc, _, act := newTaskService()
	ctx := context.Background()

	t1, err := svc.Create(ctx, owner, draft("Task one"))
	require.NoError(t, err)
	d := draft("Task two")
	d.OwnerName = "User Two"
	_, err = svc.Create(ctx, other, d)
	require.NoError(t, err)

	own, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, t1.ID, own[0].ID)

	all, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.Len(t, act.byAction("list_tasks"), 2)
	assert.Equal(t, "admin", act.byAction("list_tasks")[1].Detail["role"])
}

func TestCreateThenListFieldFidelity(t *testing.T) {
	svc, _, _ := newTaskService()
	ctx := context.Background()

	d := draft("Homework")
	created, err := svc.Create(ctx, owner, d)
	require.NoError(t, err)

	listed, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, d.OwnerName, got.OwnerName)
	assert.Equal(t, d.TaskDate, got.TaskDate)
	assert.Equal(t, d.Title, got.Title)
	assert.Equal(t, d.Subject, got.Subject)
	assert.Equal(t, d.Description, got.Description)
	assert.Equal(t, d.DueDate, got.DueDate)
	assert.Equal(t, entity.TaskStatus(d.Status), got.Status)
}

func replacement() application.TaskReplacement {
	return application.TaskReplacement{
		Title:       "Updated title",
		Subject:     "Physics",
		Description: "new description",
		DueDate:     someDay.Add(96 * time.Hour),
		Status:      "InProgress",
	}
}

func TestUpdateByOwnerAndAdmin(t *testing.T) {
	svc, _, act := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, draft("Homework"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, owner, created.ID, replacement())
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, entity.StatusInProgress, updated.Status)
	// Identity and ownership survive the replacement.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.OwnerEmail, updated.OwnerEmail)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	r := replacement()
	r.Status = "Done"
	_, err = svc.Update(ctx, admin, created.ID, r)
	require.NoError(t, err)

	assert.Len(t, act.byAction("update_task"), 2)
}

func TestUpdateMasksForbiddenAsNotFound(t *testing.T) {
	svc, _, _ := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, draft("Homework"))
	require.NoError(t, err)

	errMissing := svc.Delete(ctx, other, "no-such-id")
	_, errForeign := svc.Update(ctx, other, created.ID, replacement())

	// Absent and inaccessible must be the same error.
	assert.ErrorIs(t, errMissing, shared.ErrNotFound)
	assert.ErrorIs(t, errForeign, shared.ErrNotFound)
	assert.Equal(t, errMissing.Error(), errForeign.Error())
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	svc, _, _ := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, draft("Homework"))
	require.NoError(t, err)

	r := replacement()
	r.Status = "Finished"
	_, err = svc.Update(ctx, owner, created.ID, r)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	svc, tasks, act := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, draft("Homework"))
	require.NoError(t, err)

	// Foreign caller cannot delete, and learns nothing.
	err = svc.Delete(ctx, other, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	_, err = tasks.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.Len(t, act.byAction("delete_task"), 1)
	assert.Equal(t, created.ID, act.byAction("delete_task")[0].Detail["task_id"])
}

func TestAdminDeletesForeignTask(t *testing.T) {
	svc, tasks, _ := newTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, owner, draft("Homework"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, admin, created.ID))
	_, err = tasks.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
