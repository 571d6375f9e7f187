package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("abc"))
	assert.NoError(t, ValidateTitle(strings.Repeat("x", 100)))
	assert.Error(t, ValidateTitle("ab"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle(strings.Repeat("x", 101)))
}

func TestValidateDescription(t *testing.T) {
	assert.NoError(t, ValidateDescription(""))
	assert.NoError(t, ValidateDescription(strings.Repeat("x", 500)))
	assert.Error(t, ValidateDescription(strings.Repeat("x", 501)))
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, PriorityMedium, p)

	for _, valid := range []string{"High", "Medium", "Low"} {
		p, err := ParsePriority(valid)
		require.NoError(t, err)
		assert.Equal(t, TaskPriority(valid), p)
	}

	_, err = ParsePriority("Urgent")
	assert.Error(t, err)
	_, err = ParsePriority("high")
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	for _, valid := range []string{"Pending", "Completed"} {
		s, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, TaskStatus(valid), s)
	}

	_, err = ParseStatus("Done")
	assert.Error(t, err)
}
