package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"taskman-api/apperr"
	"taskman-api/models"
)

// TaskRequest is the create/update payload. There is no owner field: the
// owner is always the authenticated caller, never client input.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
}

// loadOwnedTask resolves the {id} route variable to a task owned by the
// caller. A task owned by someone else is reported exactly like a missing
// one, so task ids cannot be probed across accounts.
func (h *Handler) loadOwnedTask(r *http.Request) (*models.Task, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return nil, apperr.New(apperr.KindInvalidInput, "Invalid task ID")
	}
	task, err := h.tasks.FindByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != identity(r).UserID {
		return nil, apperr.New(apperr.KindNotFound, "Task not found")
	}
	return task, nil
}

// ListTasks godoc
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Task
// @Router       /api/tasks [get]
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.ListByOwner(r.Context(), identity(r).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary      Create a new task
// @Description  The task is owned by the authenticated caller.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        task  body  TaskRequest  true  "Task to create"
// @Success      201  {object}  models.Task
// @Failure      400  {string}  string  "Invalid input"
// @Router       /api/tasks [post]
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := models.ValidateTitle(req.Title); err != nil {
		writeError(w, err)
		return
	}
	if err := models.ValidateDescription(req.Description); err != nil {
		writeError(w, err)
		return
	}
	priority, err := models.ParsePriority(req.Priority)
	if err != nil {
		writeError(w, err)
		return
	}
	status, err := models.ParseStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	now := h.now().UTC()
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		Status:      status,
		OwnerID:     identity(r).UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.tasks.Insert(r.Context(), task); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Task created successfully",
		"task":    task,
	})
}

// GetTask godoc
// @Summary      Get one of the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Task
// @Failure      404  {string}  string  "Task not found"
// @Router       /api/tasks/{id} [get]
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Update one of the caller's tasks
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Task
// @Failure      404  {string}  string  "Task not found"
// @Router       /api/tasks/{id} [put]
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.New(apperr.KindInvalidInput, "Invalid request body"))
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := models.ValidateTitle(req.Title); err != nil {
		writeError(w, err)
		return
	}
	if err := models.ValidateDescription(req.Description); err != nil {
		writeError(w, err)
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Priority != "" {
		priority, err := models.ParsePriority(req.Priority)
		if err != nil {
			writeError(w, err)
			return
		}
		task.Priority = priority
	}
	if req.Status != "" {
		status, err := models.ParseStatus(req.Status)
		if err != nil {
			writeError(w, err)
			return
		}
		task.Status = status
	}
	task.UpdatedAt = h.now().UTC()

	if err := h.tasks.Update(r.Context(), task); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Task updated successfully",
		"task":    task,
	})
}

// DeleteTask godoc
// @Summary      Delete one of the caller's tasks
// @Tags         tasks
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      404  {string}  string  "Task not found"
// @Router       /api/tasks/{id} [delete]
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.loadOwnedTask(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.tasks.Delete(r.Context(), task.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
