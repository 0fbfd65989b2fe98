package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Append inserts one immutable entry. The table has no update or delete
// path; created_at is assigned by the database.
func (r *ActivityRepository) Append(ctx context.Context, e *entity.ActivityEntry) error {
	detail := e.Detail
	if detail == nil {
		detail = map[string]any{}
	}
	b, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO activity_logs (action, actor_email, detail)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, e.Action, e.ActorEmail, b)
	return row.Scan(&e.ID, &e.CreatedAt)
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)
