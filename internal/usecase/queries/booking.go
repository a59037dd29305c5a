package queries

import (
	"context"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/pkg/page"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrUserNotFound     = errs.New("user not found")
	ErrUnsupportedState = errs.New("unsupported state filter")
)

type BookingQueries interface {
	// GetForParticipant returns a booking to its booker or the item's owner.
	// Anyone else receives the same not-found signal as a missing booking.
	GetForParticipant(ctx context.Context, bookingID, viewerID uuid.UUID) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, p page.Spec) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, p page.Spec) ([]*BookingView, error)
}

// BookingReadStore is the indexed finder surface over persisted bookings.
// List results are ordered by start descending; last/next use end ordering.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByBooker(ctx context.Context, bookerID uuid.UUID, f booking.StateFilter, now time.Time, p page.Spec) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, f booking.StateFilter, now time.Time, p page.Spec) ([]*BookingView, error)
	// LastApprovedForItem returns the APPROVED booking with the greatest end
	// strictly before now, or nil when none exists.
	LastApprovedForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
	// NextApprovedForItem returns the APPROVED booking with the smallest end
	// strictly after now, or nil when none exists.
	NextApprovedForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*BookingRef, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemSummary, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, p page.Spec) ([]*ItemSummary, error)
	Search(ctx context.Context, text string, p page.Spec) ([]*ItemSummary, error)
	CommentsByItem(ctx context.Context, itemID uuid.UUID) ([]CommentView, error)
	FindCommentByID(ctx context.Context, id uuid.UUID) (*CommentView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	items    ItemReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, items ItemReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		items:    items,
		clock:    clk,
	}
}

func (q *bookingQueriesImpl) GetForParticipant(ctx context.Context, bookingID, viewerID uuid.UUID) (*BookingView, error) {
	if err := q.requireUser(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	itemSummary, err := q.items.FindByID(ctx, view.ItemID)
	if err != nil {
		return nil, err
	}

	if view.BookerID != viewerID && itemSummary.OwnerID != viewerID {
		// Do not reveal whether the booking exists to outsiders.
		return nil, errs.Mark(errs.New("viewer is neither booker nor owner"), ErrBookingNotFound)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID uuid.UUID, state string, p page.Spec) ([]*BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, errs.Mark(err, ErrUnsupportedState)
	}
	// One snapshot of now for the whole page.
	return q.bookings.ListByBooker(ctx, bookerID, filter, q.clock.Now(), p)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID uuid.UUID, state string, p page.Spec) ([]*BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	filter, err := booking.ParseStateFilter(state)
	if err != nil {
		return nil, errs.Mark(err, ErrUnsupportedState)
	}
	return q.bookings.ListByOwner(ctx, ownerID, filter, q.clock.Now(), p)
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, id uuid.UUID) error {
	exists, err := q.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
