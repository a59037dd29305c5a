package commands

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/comment"
	"lendhub/internal/domain/item"
	"lendhub/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side collaborator contracts. Implementations live in
// internal/infra/repository and surface infra.RepositoryError kinds.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// DecideIfWaiting writes the new status only when the stored row is
	// still WAITING, reporting whether a row was updated. The condition is
	// evaluated by the store, so a concurrent decision loses cleanly.
	DecideIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) (bool, error)
	// ListByItemAndBooker returns the booker's history for an item,
	// ordered by start descending.
	ListByItemAndBooker(ctx context.Context, itemID, bookerID uuid.UUID) ([]*booking.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (uuid.UUID, error)
}
