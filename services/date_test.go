package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-01-27")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"27-01-2026", "2026-01-32", "2026/01/27", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
