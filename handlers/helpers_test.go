package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"taskman-api/auth"
	"taskman-api/handlers"
	"taskman-api/models"
)

type env struct {
	users  *memUserStore
	tasks  *memTaskStore
	tokens *auth.TokenManager
	router *mux.Router
}

func newEnv(t *testing.T) *env {
	t.Helper()
	users := newMemUserStore()
	tasks := newMemTaskStore()
	tokens := auth.NewTokenManager([]byte("test-secret-key-must-be-32-bytes"), time.Hour)
	h := handlers.New(users, tasks, tokens, t.TempDir())
	return &env{users: users, tasks: tasks, tokens: tokens, router: handlers.Routes(h, tokens)}
}

// do runs a request through the full router, including the auth gate for
// protected routes. body may be nil, a raw JSON string, or a marshalable
// value.
func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *env) seedUser(t *testing.T, username, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	now := time.Now().UTC()
	user := &models.User{
		ID:             uuid.New(),
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		ProfilePicture: models.DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, e.users.Insert(context.Background(), user))
	return user
}

func (e *env) seedTask(t *testing.T, owner *models.User, title string) *models.Task {
	t.Helper()
	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: "seeded",
		Priority:    models.PriorityMedium,
		Status:      models.StatusPending,
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, e.tasks.Insert(context.Background(), task))
	return task
}

func (e *env) tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := e.tokens.Issue(user.ID, user.Username)
	require.NoError(t, err)
	return token
}
