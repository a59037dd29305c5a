package readstore

import (
	"context"

	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/page"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type itemReadStoreImpl struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) queries.ItemReadStore {
	return &itemReadStoreImpl{db: dbtx}
}

func (s *itemReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemSummary, error) {
	const query = `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE id = $1
	`
	row := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	summary, err := scanItemSummary(row)
	if err != nil {
		return nil, wrapReadErr("find item summary", err)
	}
	return summary, nil
}

func (s *itemReadStoreImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, p page.Spec) ([]*queries.ItemSummary, error) {
	const query = `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE owner_id = $1
		ORDER BY created_at ASC
		OFFSET $2 LIMIT $3
	`
	return s.listSummaries(ctx, query, pgconv.UUIDToPgtype(ownerID), p.Offset, p.Limit)
}

// Search matches name or description case-insensitively; only items
// currently marked available are returned.
func (s *itemReadStoreImpl) Search(ctx context.Context, text string, p page.Spec) ([]*queries.ItemSummary, error) {
	const query = `
		SELECT id, owner_id, name, description, available
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at ASC
		OFFSET $2 LIMIT $3
	`
	return s.listSummaries(ctx, query, text, p.Offset, p.Limit)
}

func (s *itemReadStoreImpl) listSummaries(ctx context.Context, query string, args ...any) ([]*queries.ItemSummary, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapReadErr("list item summaries", err)
	}
	defer rows.Close()

	summaries := []*queries.ItemSummary{}
	for rows.Next() {
		summary, err := scanItemSummary(rows)
		if err != nil {
			return nil, wrapReadErr("scan item summary", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate item summaries", err)
	}
	return summaries, nil
}

func (s *itemReadStoreImpl) CommentsByItem(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	const query = `
		SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created_at DESC
	`
	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(itemID))
	if err != nil {
		return nil, wrapReadErr("list comments", err)
	}
	defer rows.Close()

	views := []queries.CommentView{}
	for rows.Next() {
		view, err := scanCommentView(rows)
		if err != nil {
			return nil, wrapReadErr("scan comment", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate comments", err)
	}
	return views, nil
}

func (s *itemReadStoreImpl) FindCommentByID(ctx context.Context, id uuid.UUID) (*queries.CommentView, error) {
	const query = `
		SELECT c.id, c.item_id, c.author_id, u.name, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`
	row := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	view, err := scanCommentView(row)
	if err != nil {
		return nil, wrapReadErr("find comment", err)
	}
	return view, nil
}

func scanItemSummary(row rowScanner) (*queries.ItemSummary, error) {
	var (
		id          pgtype.UUID
		ownerID     pgtype.UUID
		name        string
		description string
		available   bool
	)
	if err := row.Scan(&id, &ownerID, &name, &description, &available); err != nil {
		return nil, err
	}
	return &queries.ItemSummary{
		ID:          uuid.UUID(id.Bytes),
		OwnerID:     uuid.UUID(ownerID.Bytes),
		Name:        name,
		Description: description,
		Available:   available,
	}, nil
}

func scanCommentView(row rowScanner) (*queries.CommentView, error) {
	var (
		id         pgtype.UUID
		itemID     pgtype.UUID
		authorID   pgtype.UUID
		authorName string
		text       string
		createdAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &itemID, &authorID, &authorName, &text, &createdAt); err != nil {
		return nil, err
	}
	return &queries.CommentView{
		ID:         uuid.UUID(id.Bytes),
		ItemID:     uuid.UUID(itemID.Bytes),
		AuthorID:   uuid.UUID(authorID.Bytes),
		AuthorName: authorName,
		Text:       text,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
	}, nil
}
