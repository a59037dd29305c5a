package commands

import (
	"context"

	"lendhub/internal/domain/comment"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommentCommands interface {
	// Create posts a comment on an item. Only a renter with at least one
	// finished, non-rejected booking of the item may comment.
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error)
}

type commentCommandsImpl struct {
	comments CommentRepository
	bookings BookingRepository
	items    ItemRepository
	users    UserRepository
	reader   queries.ItemReadStore
	clock    clock.Clock
}

func NewCommentCommands(
	comments CommentRepository,
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	reader queries.ItemReadStore,
	clk clock.Clock,
) CommentCommands {
	return &commentCommandsImpl{
		comments: comments,
		bookings: bookings,
		items:    items,
		users:    users,
		reader:   reader,
		clock:    clk,
	}
}

func (c *commentCommandsImpl) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*queries.CommentView, error) {
	exists, err := c.users.Exists(ctx, authorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check author")
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	if _, err := c.items.FindByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	history, err := c.bookings.ListByItemAndBooker(ctx, itemID, authorID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load booking history")
	}
	if err := comment.CheckEligibility(history, c.clock.Now()); err != nil {
		return nil, err
	}

	cm, err := comment.NewComment(itemID, authorID, text, c.clock.Now())
	if err != nil {
		return nil, err
	}

	id, err := c.comments.Create(ctx, cm)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create comment")
	}

	view, err := c.reader.FindCommentByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load created comment")
	}
	return view, nil
}
