package components

import (
	"lendhub/internal/infra/db"
	"lendhub/internal/infra/readstore"
	repo_impl "lendhub/internal/infra/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		repo_impl.NewUserRepository,
		repo_impl.NewItemRepository,
		repo_impl.NewBookingRepository,
		repo_impl.NewCommentRepository,
		// Read side
		readstore.NewUserReadStore,
		readstore.NewItemReadStore,
		readstore.NewBookingReadStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
