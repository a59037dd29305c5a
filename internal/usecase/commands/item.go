package commands

import (
	"context"

	"lendhub/internal/domain/item"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string, available bool) (*queries.ItemSummary, error)
	// Update applies a partial patch. Non-owners receive the same
	// not-found signal as a missing item.
	Update(ctx context.Context, itemID, actorID uuid.UUID, patch item.Patch) (*queries.ItemSummary, error)
}

type itemCommandsImpl struct {
	items  ItemRepository
	users  UserRepository
	reader queries.ItemReadStore
}

func NewItemCommands(items ItemRepository, users UserRepository, reader queries.ItemReadStore) ItemCommands {
	return &itemCommandsImpl{
		items:  items,
		users:  users,
		reader: reader,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, name, description string, available bool) (*queries.ItemSummary, error) {
	exists, err := c.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check owner")
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	it, err := item.NewItem(ownerID, name, description, available)
	if err != nil {
		return nil, err
	}

	id, err := c.items.Create(ctx, it)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create item")
	}
	return c.loadSummary(ctx, id)
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID, actorID uuid.UUID, patch item.Patch) (*queries.ItemSummary, error) {
	it, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}

	if !it.IsOwnedBy(actorID) {
		// Do not reveal the item to non-owners.
		return nil, errs.Mark(errs.New("item is owned by another user"), ErrItemNotFound)
	}

	if err := it.Apply(patch); err != nil {
		return nil, err
	}
	if err := c.items.Update(ctx, it); err != nil {
		return nil, errs.Wrap(err, "failed to update item")
	}
	return c.loadSummary(ctx, itemID)
}

func (c *itemCommandsImpl) loadSummary(ctx context.Context, id uuid.UUID) (*queries.ItemSummary, error) {
	summary, err := c.reader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load item")
	}
	return summary, nil
}
