package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tugaskita/tugaskita/internal/domain/entity"
	"github.com/tugaskita/tugaskita/internal/domain/repository"
	"github.com/tugaskita/tugaskita/internal/shared"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, owner_email, owner_name, task_date, title, subject, description, due_date, status, created_at`

func scanTask(row pgx.Row, t *entity.Task) error {
	var status string
	if err := row.Scan(&t.ID, &t.OwnerEmail, &t.OwnerName, &t.TaskDate, &t.Title,
		&t.Subject, &t.Description, &t.DueDate, &status, &t.CreatedAt); err != nil {
		return err
	}
	t.Status = entity.TaskStatus(status)
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, owner_email, owner_name, task_date, title, subject, description, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, t.ID, t.OwnerEmail, t.OwnerName, t.TaskDate, t.Title, t.Subject, t.Description, t.DueDate, t.Status.String(), t.CreatedAt)
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1
	`, id)
	if err := scanTask(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns tasks in creation order, either unfiltered or restricted to a
// single owner depending on the scope.
func (r *TaskRepository) List(ctx context.Context, scope repository.ListScope) ([]entity.Task, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if scope.All {
		rows, err = r.pool.Query(ctx, `
			SELECT `+taskColumns+`
			FROM tasks
			ORDER BY created_at
		`)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT `+taskColumns+`
			FROM tasks
			WHERE owner_email = $1
			ORDER BY created_at
		`, scope.OwnerEmail)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Update replaces the mutable fields in one statement. Identity, owner, and
// creation timestamp are never touched. Last write wins.
func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, subject = $2, description = $3, due_date = $4, status = $5
		WHERE id = $6
	`, t.Title, t.Subject, t.Description, t.DueDate, t.Status.String(), t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
