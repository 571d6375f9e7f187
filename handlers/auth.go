package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"taskman-api/apperr"
	"taskman-api/auth"
	"taskman-api/models"
)

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errInvalidCredentials is shared by the unknown-email and wrong-password
// paths so the two are indistinguishable to clients.
var errInvalidCredentials = apperr.New(apperr.KindInvalidCredentials, "Invalid credentials")

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  RegisterRequest  true  "Registration data"
// @Success      201  {object}  models.User
// @Failure      400  {string}  string  "Invalid input"
// @Failure      409  {string}  string  "Email or username taken"
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = models.NormalizeEmail(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		writeError(w, apperr.New(apperr.KindInvalidInput, "All fields are required"))
		return
	}
	if err := models.ValidateUsername(req.Username); err != nil {
		writeError(w, err)
		return
	}
	if err := models.ValidateEmail(req.Email); err != nil {
		writeError(w, err)
		return
	}
	if err := models.ValidatePassword(req.Password); err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.users.FindByEmail(r.Context(), req.Email); err == nil {
		writeError(w, apperr.New(apperr.KindConflict, "User already exists with this email"))
		return
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		writeError(w, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	now := h.now().UTC()
	user := &models.User{
		ID:             uuid.New(),
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		ProfilePicture: models.DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := h.users.Insert(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary      Authenticate and receive a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  LoginRequest  true  "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {string}  string  "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	req.Email = models.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Email and password are required"))
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			err = errInvalidCredentials
		}
		writeError(w, err)
		return
	}
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		writeError(w, errInvalidCredentials)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// CurrentUser godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Router       /api/auth/user [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
