package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskman-api/apperr"
	"taskman-api/models"
)

const taskColumns = "id, title, description, due_date, priority, status, owner_id, created_at, updated_at"

// PgTaskStore is the Postgres-backed TaskStore.
type PgTaskStore struct {
	pool *pgxpool.Pool
}

func NewTaskStore(pool *pgxpool.Pool) *PgTaskStore {
	return &PgTaskStore{pool: pool}
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.Priority, &t.Status,
		&t.OwnerID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound, "Task not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "scan task", err)
	}
	return &t, nil
}

func (s *PgTaskStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id=$1", id)
	return scanTask(row)
}

func (s *PgTaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE owner_id=$1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "list tasks", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "list tasks", err)
	}
	return tasks, nil
}

func (s *PgTaskStore) Insert(ctx context.Context, task *models.Task) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO tasks (id, title, description, due_date, priority, status, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		task.ID, task.Title, task.Description, task.DueDate, task.Priority, task.Status,
		task.OwnerID, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "insert task", err)
	}
	return nil
}

// Update persists the mutable columns of a previously loaded task. OwnerID is
// deliberately not part of the SET clause.
func (s *PgTaskStore) Update(ctx context.Context, task *models.Task) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE tasks SET title=$1, description=$2, due_date=$3, priority=$4, status=$5, updated_at=$6
		 WHERE id=$7`,
		task.Title, task.Description, task.DueDate, task.Priority, task.Status,
		task.UpdatedAt, task.ID)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "update task", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	return nil
}

func (s *PgTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM tasks WHERE id=$1", id)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "delete task", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	return nil
}
