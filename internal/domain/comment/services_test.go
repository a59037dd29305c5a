//go:build unit

package comment_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/comment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func bookingWith(status booking.Status, start, end time.Time) *booking.Booking {
	w := booking.ReconstructTimeWindow(start, end)
	return booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), w, status, start, start)
}

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := func(s booking.Status) *booking.Booking {
		return bookingWith(s, now.Add(-3*time.Hour), now.Add(-time.Hour))
	}
	future := func(s booking.Status) *booking.Booking {
		return bookingWith(s, now.Add(time.Hour), now.Add(2*time.Hour))
	}

	testCases := []struct {
		name    string
		history []*booking.Booking
		errIs   error
	}{
		{
			name:    "empty history",
			history: nil,
			errIs:   comment.ErrNoBookingHistory,
		},
		{
			name:    "completed approved booking qualifies",
			history: []*booking.Booking{past(booking.StatusApproved)},
		},
		{
			name:    "qualifying booking among noise",
			history: []*booking.Booking{future(booking.StatusApproved), past(booking.StatusRejected), past(booking.StatusApproved)},
		},
		{
			name:    "only rejected history",
			history: []*booking.Booking{past(booking.StatusRejected)},
			errIs:   comment.ErrBookingNotCompleted,
		},
		{
			name:    "only waiting history",
			history: []*booking.Booking{past(booking.StatusWaiting), future(booking.StatusWaiting)},
			errIs:   comment.ErrBookingNotCompleted,
		},
		{
			name:    "approved but not finished",
			history: []*booking.Booking{future(booking.StatusApproved)},
			errIs:   comment.ErrBookingNotCompleted,
		},
		{
			name:    "approved still running",
			history: []*booking.Booking{bookingWith(booking.StatusApproved, now.Add(-time.Hour), now.Add(time.Hour))},
			errIs:   comment.ErrBookingNotCompleted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := comment.CheckEligibility(tc.history, now)
			if tc.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestNewComment(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("trims text", func(t *testing.T) {
		c, err := comment.NewComment(uuid.New(), uuid.New(), "  great drill  ", now)
		require.NoError(t, err)
		require.Equal(t, "great drill", c.Text())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := comment.NewComment(uuid.New(), uuid.New(), "   ", now)
		require.ErrorIs(t, err, comment.ErrEmptyText)
	})

	t.Run("too long", func(t *testing.T) {
		long := make([]byte, comment.MaxTextLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := comment.NewComment(uuid.New(), uuid.New(), string(long), now)
		require.ErrorIs(t, err, comment.ErrTextTooLong)
	})
}
