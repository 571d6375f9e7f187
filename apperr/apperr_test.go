package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindNotFound, "Task not found")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("handler: %w", err)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestMessageHidesUntaggedErrors(t *testing.T) {
	assert.Equal(t, "Task not found", Message(New(KindNotFound, "Task not found")))
	assert.Equal(t, "Internal Server Error", Message(errors.New("pq: connection refused")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindStore, "query user", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindStore, KindOf(err))
	assert.Contains(t, err.Error(), "query user")
}
