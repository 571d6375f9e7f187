// Package store contains the persistence adapters. Handlers depend on the
// interfaces here; the pgx-backed implementations live alongside them.
//
// Implementations report failures through the apperr taxonomy: missing rows
// as KindNotFound, unique constraint violations as KindConflict, and any
// other database failure as KindStore.
package store

import (
	"context"

	"github.com/google/uuid"

	"taskman-api/models"
)

// UserStore is the boundary to user persistence.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id uuid.UUID, fields UserUpdate) (*models.User, error)
}

// UserUpdate lists the user fields a settings operation may change. Nil
// pointers leave the column untouched.
type UserUpdate struct {
	Username       *string
	PasswordHash   *string
	ProfilePicture *string
}

// TaskStore is the boundary to task persistence. Ownership checks are the
// caller's job: FindByID returns a task regardless of who owns it.
type TaskStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
