package repository

import (
	"context"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
)

// ListScope narrows a task listing to one owner. The zero value (All=false,
// empty OwnerEmail) matches nothing by construction; callers obtain scopes
// from the authorization policy only.
type ListScope struct {
	All        bool
	OwnerEmail string
}

// TaskRepository defines task storage. All operations are atomic at the
// single-record granularity; concurrent updates are last-write-wins.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	List(ctx context.Context, scope ListScope) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id string) error
}
