package booking

import (
	"errors"
	"time"
)

var ErrInvalidTimeWindow = errors.New("invalid time window")

// TimeWindow is the half-open [start, end) interval of a booking.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow rejects windows with start >= end and windows that have
// already ended. A window that started in the past but ends in the future is
// accepted; only end is measured against now.
func NewTimeWindow(start, end, now time.Time) (TimeWindow, error) {
	if start.After(end) || start.Equal(end) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	if end.Before(now) {
		return TimeWindow{}, ErrInvalidTimeWindow
	}
	return TimeWindow{start: start, end: end}, nil
}

// ReconstructTimeWindow restores a persisted window without validation.
func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start, end: end}
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

func (w TimeWindow) EndedBefore(t time.Time) bool {
	return w.end.Before(t)
}
