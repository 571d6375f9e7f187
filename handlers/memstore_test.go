package handlers_test

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"taskman-api/apperr"
	"taskman-api/models"
	"taskman-api/store"
)

// memUserStore and memTaskStore are in-memory stand-ins for the Postgres
// stores. They return copies so tests can compare before/after state without
// aliasing the stored records.

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, apperr.New(apperr.KindNotFound, "User not found")
}

func (s *memUserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	return &u, nil
}

func (s *memUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email || u.Username == user.Username {
			return apperr.New(apperr.KindConflict, "Username or email already in use")
		}
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Update(_ context.Context, id uuid.UUID, fields store.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}
	if fields.Username != nil {
		for otherID, other := range s.users {
			if otherID != id && other.Username == *fields.Username {
				return nil, apperr.New(apperr.KindConflict, "Username or email already in use")
			}
		}
		u.Username = *fields.Username
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	if fields.ProfilePicture != nil {
		u.ProfilePicture = *fields.ProfilePicture
	}
	s.users[id] = u
	return &u, nil
}

type memTaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]models.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[uuid.UUID]models.Task)}
}

func (s *memTaskStore) FindByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "Task not found")
	}
	return &t, nil
}

func (s *memTaskStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := []models.Task{}
	for _, t := range s.tasks {
		if t.OwnerID == ownerID {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *memTaskStore) Insert(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

func (s *memTaskStore) Update(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	s.tasks[task.ID] = *task
	return nil
}

func (s *memTaskStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return apperr.New(apperr.KindNotFound, "Task not found")
	}
	delete(s.tasks, id)
	return nil
}
