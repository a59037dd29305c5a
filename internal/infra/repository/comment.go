package repository

import (
	"context"

	"lendhub/internal/domain/comment"
	"lendhub/internal/infra/db"
	"lendhub/internal/pkg/pgconv"
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type commentRepositoryImpl struct {
	db db.DBTX
}

func NewCommentRepository(dbtx db.DBTX) commands.CommentRepository {
	return &commentRepositoryImpl{db: dbtx}
}

func (r *commentRepositoryImpl) Create(ctx context.Context, c *comment.Comment) (uuid.UUID, error) {
	const query = `
		INSERT INTO comments (id, item_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query,
		pgconv.UUIDToPgtype(c.ID()),
		pgconv.UUIDToPgtype(c.ItemID()),
		pgconv.UUIDToPgtype(c.AuthorID()),
		c.Text(),
		pgconv.TimeToPgtype(c.CreatedAt()),
	); err != nil {
		return uuid.Nil, wrapPgErr("insert comment", err)
	}
	return c.ID(), nil
}
