// Package handlers implements the HTTP surface of the API.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"taskman-api/apperr"
	"taskman-api/auth"
	"taskman-api/middlewares"
	"taskman-api/store"
)

// Handler bundles the dependencies shared by all HTTP handlers. Everything is
// injected once in main; there are no package-level globals.
type Handler struct {
	users     store.UserStore
	tasks     store.TaskStore
	tokens    *auth.TokenManager
	uploadDir string
	now       func() time.Time
}

func New(users store.UserStore, tasks store.TaskStore, tokens *auth.TokenManager, uploadDir string) *Handler {
	return &Handler{
		users:     users,
		tasks:     tasks,
		tokens:    tokens,
		uploadDir: uploadDir,
		now:       time.Now,
	}
}

// identity returns the caller attached by the auth gate. Routes registered
// behind RequireAuth always have one.
func identity(r *http.Request) auth.Identity {
	id, _ := middlewares.GetIdentity(r)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

// writeError renders an error at the handler boundary. Client-recoverable
// kinds return their message; store and unknown failures are logged and
// rendered as an opaque 500. No internal detail ever reaches clients.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput, apperr.KindInvalidCredentials:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": apperr.Message(err)})
}
