package commands

import (
	"context"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item is not available for booking")
	ErrAlreadyDecided  = errs.New("booking has already been decided")
	ErrNotOwner        = errs.New("only the item owner may decide a booking")
)

type BookingCommands interface {
	Create(ctx context.Context, itemID, bookerID uuid.UUID, start, end time.Time) (*queries.BookingView, error)
	// Approve settles a WAITING booking to APPROVED or REJECTED on behalf
	// of the item's owner. A booking can be decided exactly once.
	Approve(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	items    ItemRepository
	users    UserRepository
	reader   queries.BookingReadStore
	clock    clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	reader queries.BookingReadStore,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		reader:   reader,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, itemID, bookerID uuid.UUID, start, end time.Time) (*queries.BookingView, error) {
	it, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	exists, err := c.users.Exists(ctx, bookerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check booker")
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if !it.Available() {
		return nil, ErrItemUnavailable
	}
	if it.IsOwnedBy(bookerID) {
		// Owners never see their own item as bookable.
		return nil, errs.Mark(booking.ErrSelfBooking, ErrItemNotFound)
	}

	window, err := booking.NewTimeWindow(start, end, c.clock.Now())
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(itemID, bookerID, it.OwnerID(), window)
	if err != nil {
		return nil, errs.Mark(err, ErrItemNotFound)
	}

	id, err := c.bookings.Create(ctx, b)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create booking")
	}

	view, err := c.reader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load created booking")
	}
	return view, nil
}

func (c *bookingCommandsImpl) Approve(ctx context.Context, bookingID, actorID uuid.UUID, approved bool) (*queries.BookingView, error) {
	exists, err := c.users.Exists(ctx, actorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check actor")
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}

	if b.IsDecided() {
		return nil, ErrAlreadyDecided
	}
	if b.BookerID() == actorID {
		// Bookers cannot settle their own request; hide the booking instead.
		return nil, errs.Mark(errs.New("booker cannot decide own booking"), ErrBookingNotFound)
	}

	it, err := c.items.FindByID(ctx, b.ItemID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to find booked item")
	}
	if !it.IsOwnedBy(actorID) {
		return nil, ErrNotOwner
	}

	if err := b.Decide(approved); err != nil {
		return nil, ErrAlreadyDecided
	}

	updated, err := c.bookings.DecideIfWaiting(ctx, bookingID, b.Status())
	if err != nil {
		return nil, errs.Wrap(err, "failed to update booking status")
	}
	if !updated {
		// Lost the race against a concurrent decision.
		return nil, ErrAlreadyDecided
	}

	view, err := c.reader.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load decided booking")
	}
	return view, nil
}
