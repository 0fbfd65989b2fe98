package repository

import (
	"context"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
)

// ActivityRepository is the append-only sink for security-relevant actions.
// There is deliberately no update or delete operation.
type ActivityRepository interface {
	Append(ctx context.Context, e *entity.ActivityEntry) error
}
