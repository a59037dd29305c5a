package queries

import (
	"context"
	"strings"

	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/pkg/page"

	"github.com/google/uuid"
)

var ErrItemNotFound = errs.New("item not found")

type ItemQueries interface {
	// GetByID returns the item with comments; the last/next booking
	// annotation is filled only when the viewer owns the item.
	GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, p page.Spec) ([]*ItemView, error)
	Search(ctx context.Context, text string, p page.Spec) ([]*ItemSummary, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, users UserReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, viewerID uuid.UUID) (*ItemView, error) {
	summary, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	view, err := q.buildView(ctx, summary, viewerID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, p page.Spec) ([]*ItemView, error) {
	exists, err := q.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	summaries, err := q.items.ListByOwner(ctx, ownerID, p)
	if err != nil {
		return nil, err
	}

	views := make([]*ItemView, len(summaries))
	for i, summary := range summaries {
		views[i], err = q.buildView(ctx, summary, ownerID)
		if err != nil {
			return nil, err
		}
	}
	return views, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, p page.Spec) ([]*ItemSummary, error) {
	if strings.TrimSpace(text) == "" {
		return []*ItemSummary{}, nil
	}
	return q.items.Search(ctx, text, p)
}

// buildView assembles the item view; booking annotations are owner-only.
// When no finished booking exists but an upcoming one does, the upcoming
// booking is shown in the last slot and next is cleared.
func (q *itemQueriesImpl) buildView(ctx context.Context, summary *ItemSummary, viewerID uuid.UUID) (*ItemView, error) {
	comments, err := q.items.CommentsByItem(ctx, summary.ID)
	if err != nil {
		return nil, err
	}

	view := &ItemView{
		ID:          summary.ID,
		OwnerID:     summary.OwnerID,
		Name:        summary.Name,
		Description: summary.Description,
		Available:   summary.Available,
		Comments:    comments,
	}

	if summary.OwnerID != viewerID {
		return view, nil
	}

	now := q.clock.Now()
	last, err := q.bookings.LastApprovedForItem(ctx, summary.ID, now)
	if err != nil {
		return nil, err
	}
	next, err := q.bookings.NextApprovedForItem(ctx, summary.ID, now)
	if err != nil {
		return nil, err
	}

	if last == nil && next != nil {
		last, next = next, nil
	}
	view.LastBooking = last
	view.NextBooking = next
	return view, nil
}
