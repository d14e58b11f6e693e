package user

import (
	"context"

	"github.com/google/uuid"
)

type Storer interface {
	findAll(ctx context.Context) ([]*User, error)
	deleteOne(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) listUsers(ctx context.Context) ([]*User, error) {
	return s.store.findAll(ctx)
}

func (s *service) deleteUser(ctx context.Context, userID uuid.UUID) error {
	return s.store.deleteOne(ctx, userID)
}
