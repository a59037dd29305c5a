package comment

import (
	"errors"
	"time"

	"lendhub/internal/domain/booking"
)

var (
	ErrNoBookingHistory    = errors.New("user has no bookings for this item")
	ErrBookingNotCompleted = errors.New("no completed booking qualifies for a comment")
)

// CheckEligibility gates comment creation on the author's booking history for
// the item. At least one booking must be decided in the author's favor and
// already finished: neither REJECTED nor still WAITING, with end before now.
func CheckEligibility(history []*booking.Booking, now time.Time) error {
	if len(history) == 0 {
		return ErrNoBookingHistory
	}
	for _, b := range history {
		if b.Status() == booking.StatusRejected || b.Status() == booking.StatusWaiting {
			continue
		}
		if b.HasFinished(now) {
			return nil
		}
	}
	return ErrBookingNotCompleted
}
