package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotWaiting  = errors.New("booking is not waiting for a decision")
	ErrSelfBooking = errors.New("owner cannot book own item")
)

type Booking struct {
	id        uuid.UUID
	itemID    uuid.UUID
	bookerID  uuid.UUID
	window    TimeWindow
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a WAITING booking request. The item/booker existence and
// availability checks happen in the use case; the entity enforces only the
// rules expressible without collaborators.
func NewBooking(itemID, bookerID, ownerID uuid.UUID, window TimeWindow) (*Booking, error) {
	if bookerID == ownerID {
		return nil, ErrSelfBooking
	}
	return &Booking{
		id:       uuid.New(),
		itemID:   itemID,
		bookerID: bookerID,
		window:   window,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, bookerID uuid.UUID, window TimeWindow, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		window:    window,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Any other starting
// status fails; the transition happens at most once.
func (b *Booking) Decide(approved bool) error {
	if b.status != StatusWaiting {
		return ErrNotWaiting
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsDecided() bool {
	return b.status == StatusApproved || b.status == StatusRejected
}

func (b *Booking) HasFinished(now time.Time) bool {
	return b.window.EndedBefore(now)
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) ItemID() uuid.UUID   { return b.itemID }
func (b *Booking) BookerID() uuid.UUID { return b.bookerID }
func (b *Booking) Window() TimeWindow  { return b.window }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}
func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}
