package models

import (
	"time"

	"github.com/google/uuid"

	"taskman-api/apperr"
)

const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// TaskPriority is the urgency bucket of a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// TaskStatus tracks whether a task is done.
type TaskStatus string

const (
	StatusPending   TaskStatus = "Pending"
	StatusCompleted TaskStatus = "Completed"
)

// Task belongs to exactly one user. OwnerID is set by the server at creation
// and never changes afterwards.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	OwnerID     uuid.UUID    `json:"ownerId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ValidateTitle enforces the 3-100 character bound.
func ValidateTitle(title string) error {
	if l := len(title); l < TitleMinLen || l > TitleMaxLen {
		return apperr.New(apperr.KindInvalidInput, "Title must be 3-100 characters")
	}
	return nil
}

// ValidateDescription enforces the 500 character cap.
func ValidateDescription(description string) error {
	if len(description) > DescriptionMaxLen {
		return apperr.New(apperr.KindInvalidInput, "Description must be at most 500 characters")
	}
	return nil
}

// ParsePriority validates a priority value. The empty string falls back to
// Medium so clients may omit it on create.
func ParsePriority(s string) (TaskPriority, error) {
	switch TaskPriority(s) {
	case "":
		return PriorityMedium, nil
	case PriorityHigh, PriorityMedium, PriorityLow:
		return TaskPriority(s), nil
	}
	return "", apperr.New(apperr.KindInvalidInput, "Priority must be High, Medium or Low")
}

// ParseStatus validates a status value. The empty string falls back to
// Pending so clients may omit it on create.
func ParseStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case "":
		return StatusPending, nil
	case StatusPending, StatusCompleted:
		return TaskStatus(s), nil
	}
	return "", apperr.New(apperr.KindInvalidInput, "Status must be Pending or Completed")
}
