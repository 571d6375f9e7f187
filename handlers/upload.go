package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"taskman-api/apperr"
)

// maxUploadBytes caps profile picture uploads at 10MB.
const maxUploadBytes = 10 << 20

// UploadImage accepts a multipart image, stores it under the configured
// upload directory, and returns the path to pass to the profile-picture
// setting.
//
// UploadImage godoc
// @Summary      Upload a profile image
// @Tags         uploads
// @Accept       mpfd
// @Security     BearerAuth
// @Success      201  {object}  map[string]string
// @Router       /api/uploads [post]
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Unable to parse form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Image not provided"))
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		writeError(w, apperr.Wrap(apperr.KindStore, "create upload dir", err))
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(header.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		writeError(w, apperr.Wrap(apperr.KindStore, "save file", err))
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, apperr.Wrap(apperr.KindStore, "write file", err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Image uploaded",
		"path":    "/uploads/" + filename,
	})
}
