package commands

import (
	"context"

	"lendhub/internal/domain/user"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrEmailConflict = errs.New("email address already registered")

type UserCommands interface {
	Create(ctx context.Context, name, email string) (*queries.UserView, error)
	Update(ctx context.Context, id uuid.UUID, patch user.Patch) (*queries.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	users  UserRepository
	reader queries.UserReadStore
}

func NewUserCommands(users UserRepository, reader queries.UserReadStore) UserCommands {
	return &userCommandsImpl{
		users:  users,
		reader: reader,
	}
}

func (c *userCommandsImpl) Create(ctx context.Context, name, email string) (*queries.UserView, error) {
	u, err := user.NewUser(name, email)
	if err != nil {
		return nil, err
	}

	id, err := c.users.Create(ctx, u)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailConflict)
		}
		return nil, errs.Wrap(err, "failed to create user")
	}
	return c.loadView(ctx, id)
}

func (c *userCommandsImpl) Update(ctx context.Context, id uuid.UUID, patch user.Patch) (*queries.UserView, error) {
	u, err := c.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if err := u.Apply(patch); err != nil {
		return nil, err
	}
	if err := c.users.Update(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailConflict)
		}
		return nil, errs.Wrap(err, "failed to update user")
	}
	return c.loadView(ctx, id)
}

func (c *userCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := c.users.Exists(ctx, id)
	if err != nil {
		return errs.Wrap(err, "failed to check user")
	}
	if !exists {
		return ErrUserNotFound
	}
	if err := c.users.Delete(ctx, id); err != nil {
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}

func (c *userCommandsImpl) loadView(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	view, err := c.reader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load user")
	}
	return view, nil
}
