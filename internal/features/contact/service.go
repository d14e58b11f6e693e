package contact

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Storer interface {
	createOne(ctx context.Context, messageID uuid.UUID, req *ContactRequest) error
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) submitMessage(ctx context.Context, req *ContactRequest) (uuid.UUID, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	messageID := uuid.New()
	if err := s.store.createOne(ctx, messageID, req); err != nil {
		return uuid.Nil, err
	}

	return messageID, nil
}
