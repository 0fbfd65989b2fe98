package repository

import (
	"context"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
)

// UserRepository defines the interface for identity storage. Create must
// enforce email uniqueness atomically and surface a duplicate as
// shared.ErrDuplicateIdentity.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
