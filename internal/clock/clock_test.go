package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planhub/planner/internal/clock"
)

func TestNowFormat(t *testing.T) {
	stamp := clock.Now()

	parsed, err := time.Parse(clock.Layout, stamp)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())

	// Fixed width keeps lexicographic order chronological.
	assert.Len(t, stamp, len("2006-01-02T15:04:05.000000Z"))
}

func TestLayoutIsFixedWidth(t *testing.T) {
	// Sub-millisecond times must not shrink the fractional part.
	early := time.Date(2024, 1, 2, 3, 4, 5, 70, time.UTC).Format(clock.Layout)
	late := time.Date(2024, 1, 2, 3, 4, 5, 700000000, time.UTC).Format(clock.Layout)

	assert.Len(t, early, len(late))
	assert.Less(t, early, late)
}
