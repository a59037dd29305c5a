//go:build unit || e2e

package builder

import (
	"lendhub/internal/domain/item"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Available   bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries",
		Available:   true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"name":        b.Name,
		"description": b.Description,
		"available":   b.Available,
	}
}

func (b *ItemBuilder) BuildDomain() *item.Item {
	return item.ReconstructItem(b.ID, b.OwnerID, b.Name, b.Description, b.Available, fixedNow(), fixedNow())
}

func (b *ItemBuilder) BuildSummary() *queries.ItemSummary {
	return &queries.ItemSummary{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
	}
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Available:   b.Available,
		Comments:    []queries.CommentView{},
	}
}
