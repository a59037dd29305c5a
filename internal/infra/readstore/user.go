package readstore

import (
	"context"

	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type userReadStoreImpl struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) queries.UserReadStore {
	return &userReadStoreImpl{db: dbtx}
}

func (s *userReadStoreImpl) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM users
		WHERE id = $1
	`
	row := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id))
	view, err := scanUserView(row)
	if err != nil {
		return nil, wrapReadErr("find user view", err)
	}
	return view, nil
}

func (s *userReadStoreImpl) List(ctx context.Context) ([]*queries.UserView, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM users
		ORDER BY created_at ASC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapReadErr("list user views", err)
	}
	defer rows.Close()

	views := []*queries.UserView{}
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, wrapReadErr("scan user view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("iterate user views", err)
	}
	return views, nil
}

func (s *userReadStoreImpl) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := s.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&exists); err != nil {
		return false, wrapReadErr("check user exists", err)
	}
	return exists, nil
}

func scanUserView(row rowScanner) (*queries.UserView, error) {
	var (
		id        pgtype.UUID
		name      string
		email     string
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &email, &createdAt); err != nil {
		return nil, err
	}
	return &queries.UserView{
		ID:        uuid.UUID(id.Bytes),
		Name:      name,
		Email:     email,
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
	}, nil
}
