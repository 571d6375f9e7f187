package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"taskman-api/apperr"
	"taskman-api/auth"
	"taskman-api/models"
	"taskman-api/store"
)

type updateUsernameRequest struct {
	Username string `json:"username"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type updateProfilePictureRequest struct {
	ProfilePicture string `json:"profilePicture"`
}

// UpdateUsername godoc
// @Summary      Change the authenticated user's username
// @Tags         settings
// @Security     BearerAuth
// @Router       /api/settings/username [put]
func (h *Handler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	var req updateUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Username is required"))
		return
	}
	if err := models.ValidateUsername(req.Username); err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.users.Update(r.Context(), identity(r).UserID, store.UserUpdate{Username: &req.Username}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Username updated successfully!"})
}

// ChangePassword verifies the old password before rehashing the new one. The
// stored hash is untouched when verification fails. Previously issued tokens
// stay valid until they expire.
//
// ChangePassword godoc
// @Summary      Change the authenticated user's password
// @Tags         settings
// @Security     BearerAuth
// @Router       /api/settings/password [put]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	if req.OldPassword == "" || len(req.NewPassword) < models.PasswordMinLen {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid password input"))
		return
	}

	user, err := h.users.FindByID(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !auth.VerifyPassword(req.OldPassword, user.PasswordHash) {
		writeError(w, apperr.New(apperr.KindInvalidCredentials, "Old password is incorrect"))
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := h.users.Update(r.Context(), user.ID, store.UserUpdate{PasswordHash: &hash}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully!"})
}

// UpdateProfilePicture godoc
// @Summary      Change the authenticated user's profile picture
// @Tags         settings
// @Security     BearerAuth
// @Router       /api/settings/profile-picture [put]
func (h *Handler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	var req updateProfilePictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	if strings.TrimSpace(req.ProfilePicture) == "" {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Profile picture URL is required"))
		return
	}

	if _, err := h.users.Update(r.Context(), identity(r).UserID, store.UserUpdate{ProfilePicture: &req.ProfilePicture}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile picture updated successfully!"})
}
