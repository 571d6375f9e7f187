package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskman-api/apperr"
	"taskman-api/models"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const userColumns = "id, username, email, password_hash, profile_picture, created_at, updated_at"

// PgUserStore is the Postgres-backed UserStore.
type PgUserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *PgUserStore {
	return &PgUserStore{pool: pool}
}

func (s *PgUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE email=$1", email)
}

func (s *PgUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id=$1", id)
}

func (s *PgUserStore) findOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "query user", err)
	}
	return &u, nil
}

func (s *PgUserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, profile_picture, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.ProfilePicture,
		user.CreatedAt, user.UpdatedAt)
	if isUniqueViolation(err) {
		return apperr.New(apperr.KindConflict, "Username or email already in use")
	}
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "insert user", err)
	}
	return nil
}

func (s *PgUserStore) Update(ctx context.Context, id uuid.UUID, fields UserUpdate) (*models.User, error) {
	set := []string{"updated_at=$1"}
	args := []any{time.Now().UTC()}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if fields.Username != nil {
		add("username", *fields.Username)
	}
	if fields.PasswordHash != nil {
		add("password_hash", *fields.PasswordHash)
	}
	if fields.ProfilePicture != nil {
		add("profile_picture", *fields.ProfilePicture)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id=$%d RETURNING %s",
		strings.Join(set, ", "), len(args), userColumns)

	var u models.User
	err := s.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	if isUniqueViolation(err) {
		return nil, apperr.New(apperr.KindConflict, "Username or email already in use")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "update user", err)
	}
	return &u, nil
}
