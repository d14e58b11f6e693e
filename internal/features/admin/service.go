package admin

import "context"

type Storer interface {
	gatherStats(ctx context.Context) (*StatsResponse, error)
}

type tokenManager interface {
	Login(password string) (string, error)
}

type service struct {
	store  Storer
	tokens tokenManager
}

func NewService(store Storer, tokens tokenManager) *service {
	return &service{
		store:  store,
		tokens: tokens,
	}
}

func (s *service) login(req *LoginRequest) (*LoginResponse, error) {
	token, err := s.tokens.Login(req.Password)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token}, nil
}

func (s *service) stats(ctx context.Context) (*StatsResponse, error) {
	return s.store.gatherStats(ctx)
}
