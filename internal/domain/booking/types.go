package booking

import (
	"errors"
	"strings"
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is part of the stored vocabulary but no operation
	// currently produces it.
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

var ErrInvalidStatus = errors.New("invalid booking status")

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// StateFilter names a partition of bookings by temporal or status predicate.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

var ErrUnsupportedState = errors.New("unsupported state filter")

// ParseStateFilter accepts the filter vocabulary case-insensitively.
func ParseStateFilter(raw string) (StateFilter, error) {
	switch f := StateFilter(strings.ToUpper(raw)); f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return f, nil
	default:
		return "", ErrUnsupportedState
	}
}
