//go:build unit || e2e

package builder

import (
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

type BookingBuilder struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:       uuid.New(),
		ItemID:   uuid.New(),
		BookerID: uuid.New(),
		Start:    fixedNow().Add(24 * time.Hour),
		End:      fixedNow().Add(48 * time.Hour),
		Status:   booking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"item_id": b.ItemID.String(),
		"start":   b.Start.Format(time.RFC3339),
		"end":     b.End.Format(time.RFC3339),
	}
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		b.ItemID,
		b.BookerID,
		booking.ReconstructTimeWindow(b.Start, b.End),
		b.Status,
		fixedNow(),
		fixedNow(),
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID,
		ItemID:     b.ItemID,
		ItemName:   "Cordless Drill",
		BookerID:   b.BookerID,
		BookerName: "Test User",
		Start:      b.Start,
		End:        b.End,
		Status:     string(b.Status),
		CreatedAt:  fixedNow(),
		UpdatedAt:  fixedNow(),
	}
}

func (b *BookingBuilder) BuildRef() *queries.BookingRef {
	return &queries.BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
