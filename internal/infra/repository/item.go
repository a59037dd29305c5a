package repository

import (
	"context"

	"lendhub/internal/domain/item"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type itemRepositoryImpl struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) commands.ItemRepository {
	return &itemRepositoryImpl{db: dbtx}
}

func (r *itemRepositoryImpl) Create(ctx context.Context, i *item.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO items (id, owner_id, name, description, available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`
	if _, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(i.ID()),
		pgconv.UUIDToPgtype(i.OwnerID()),
		i.Name(),
		i.Description(),
		i.Available(),
	); err != nil {
		return uuid.Nil, wrapPgErr("insert item", err)
	}
	return i.ID(), nil
}

func (r *itemRepositoryImpl) Update(ctx context.Context, i *item.Item) error {
	const query = `
		UPDATE items
		SET name = $2, description = $3, available = $4, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(i.ID()),
		i.Name(),
		i.Description(),
		i.Available(),
	)
	if err != nil {
		return wrapPgErr("update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("update item", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *itemRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const query = `
		SELECT id, owner_id, name, description, available, created_at, updated_at
		FROM items
		WHERE id = $1
	`
	var (
		rowID       pgtype.UUID
		ownerID     pgtype.UUID
		name        string
		description string
		available   bool
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &ownerID, &name, &description, &available, &createdAt, &updatedAt); err != nil {
		return nil, wrapPgErr("find item", err)
	}
	return item.ReconstructItem(
		uuid.UUID(rowID.Bytes),
		uuid.UUID(ownerID.Bytes),
		name,
		description,
		available,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
