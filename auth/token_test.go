package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-must-be-32-bytes")

func TestIssueVerifyRoundtrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	userID := uuid.New()

	token, err := m.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestVerifyExpiredToken(t *testing.T) {
	issued := time.Now()
	issuer := NewTokenManager(testSecret, time.Hour, WithClock(func() time.Time { return issued }))
	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	// Still valid just before the one-hour lifetime.
	early := NewTokenManager(testSecret, time.Hour, WithClock(func() time.Time { return issued.Add(59 * time.Minute) }))
	_, err = early.Verify(token)
	assert.NoError(t, err)

	// Dead just after it.
	late := NewTokenManager(testSecret, time.Hour, WithClock(func() time.Time { return issued.Add(61 * time.Minute) }))
	_, err = late.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Issue(uuid.New(), "alice")
	require.NoError(t, err)

	other := NewTokenManager([]byte("another-secret-that-is-not-same!"), time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", raw)
	}
}

func TestVerifyRejectsNonUUIDSubject(t *testing.T) {
	claims := Claims{
		UserID:   "not-a-uuid",
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
