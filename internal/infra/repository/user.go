package repository

import (
	"context"

	"lendhub/internal/domain/user"
	"lendhub/internal/infra"
	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type userRepositoryImpl struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) commands.UserRepository {
	return &userRepositoryImpl{db: dbtx}
}

func (r *userRepositoryImpl) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
	`
	if _, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Name(),
		u.Email(),
	); err != nil {
		return uuid.Nil, wrapPgErr("insert user", err)
	}
	return u.ID(), nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	const query = `
		UPDATE users
		SET name = $2, email = $3, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(u.ID()),
		u.Name(),
		u.Email(),
	)
	if err != nil {
		return wrapPgErr("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("update user", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *userRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, pgconv.UUIDToPgtype(id)); err != nil {
		return wrapPgErr("delete user", err)
	}
	return nil
}

func (r *userRepositoryImpl) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).Scan(&exists); err != nil {
		return false, wrapPgErr("check user exists", err)
	}
	return exists, nil
}

func (r *userRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `
		SELECT id, name, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var (
		rowID     pgtype.UUID
		name      string
		email     string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := r.db.QueryRow(ctx, query, pgconv.UUIDToPgtype(id)).
		Scan(&rowID, &name, &email, &createdAt, &updatedAt); err != nil {
		return nil, wrapPgErr("find user", err)
	}
	return user.ReconstructUser(
		uuid.UUID(rowID.Bytes),
		name,
		email,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
