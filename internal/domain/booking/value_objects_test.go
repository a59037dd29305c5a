//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		start      time.Time
		end        time.Time
		expectsErr bool
	}{
		{
			name:  "future window",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "already started but not finished",
			start: now.Add(-time.Hour),
			end:   now.Add(time.Hour),
		},
		{
			name:  "ends exactly now",
			start: now.Add(-time.Hour),
			end:   now,
		},
		{
			name:       "start equals end",
			start:      now.Add(time.Hour),
			end:        now.Add(time.Hour),
			expectsErr: true,
		},
		{
			name:       "start after end",
			start:      now.Add(2 * time.Hour),
			end:        now.Add(time.Hour),
			expectsErr: true,
		},
		{
			name:       "already finished",
			start:      now.Add(-2 * time.Hour),
			end:        now.Add(-time.Hour),
			expectsErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := booking.NewTimeWindow(tc.start, tc.end, now)
			if tc.expectsErr {
				require.ErrorIs(t, err, booking.ErrInvalidTimeWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, w.Start())
			assert.Equal(t, tc.end, w.End())
		})
	}
}

func TestTimeWindowPredicates(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := booking.ReconstructTimeWindow(now.Add(-time.Hour), now.Add(time.Hour))

	assert.True(t, w.Contains(now))
	assert.True(t, w.Contains(w.Start()))
	assert.True(t, w.Contains(w.End()))
	assert.False(t, w.Contains(now.Add(2*time.Hour)))

	assert.False(t, w.EndedBefore(now))
	assert.True(t, w.EndedBefore(now.Add(2*time.Hour)))
	assert.Equal(t, 2*time.Hour, w.Duration())
}
