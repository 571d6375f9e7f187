package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskman-api/apperr"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 30
	PasswordMinLen = 6
)

// DefaultProfilePicture is assigned when a user registers without one.
const DefaultProfilePicture = "default-profile-picture.png"

var emailPattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// User is an identity record. PasswordHash is never serialized; it is only
// ever produced by auth.HashPassword.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ValidateUsername enforces the canonical 3-30 character bound.
func ValidateUsername(username string) error {
	if l := len(username); l < UsernameMinLen || l > UsernameMaxLen {
		return apperr.New(apperr.KindInvalidInput, "Username must be 3-30 characters")
	}
	return nil
}

// ValidateEmail checks the address format. Call NormalizeEmail first.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return apperr.New(apperr.KindInvalidInput, "Invalid email address")
	}
	return nil
}

// NormalizeEmail trims and lowercases an address; stored emails are always
// in this form so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword enforces the minimum length shared by registration and
// password change.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen {
		return apperr.New(apperr.KindInvalidInput, "Password must be at least 6 characters")
	}
	return nil
}
