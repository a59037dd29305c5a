//go:build unit

package booking_test

import (
	"testing"

	"lendhub/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStateFilter(t *testing.T) {
	accepted := map[string]booking.StateFilter{
		"ALL":      booking.FilterAll,
		"all":      booking.FilterAll,
		"Current":  booking.FilterCurrent,
		"PAST":     booking.FilterPast,
		"future":   booking.FilterFuture,
		"waiting":  booking.FilterWaiting,
		"REJECTED": booking.FilterRejected,
	}
	for raw, expected := range accepted {
		f, err := booking.ParseStateFilter(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, expected, f)
	}

	for _, raw := range []string{"", "APPROVED", "CANCELED", "UNSUPPORTED_STATUS", "past "} {
		_, err := booking.ParseStateFilter(raw)
		require.ErrorIs(t, err, booking.ErrUnsupportedState, raw)
	}
}

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"WAITING", "APPROVED", "REJECTED", "CANCELED"} {
		s, err := booking.ParseStatus(raw)
		require.NoError(t, err)
		assert.True(t, s.IsValid())
	}

	_, err := booking.ParseStatus("waiting")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
	_, err = booking.ParseStatus("DONE")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}
