package auth

import (
	"crypto/subtle"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

// TokenService checks admin credentials against the single configured
// shared secret. The secret doubles as the bearer token handed back on
// login, so there is no separate token issuance step. With no secret
// configured every check fails closed.
type TokenService struct {
	adminSecret string
}

func NewTokenService(adminSecret string) *TokenService {
	return &TokenService{
		adminSecret: adminSecret,
	}
}

// Login returns the bearer token for a correct password.
func (s *TokenService) Login(password string) (string, error) {
	if !s.VerifyToken(password) {
		return "", servererrors.ErrUnauthorized
	}

	return s.adminSecret, nil
}

func (s *TokenService) VerifyToken(token string) bool {
	if s.adminSecret == "" || token == "" {
		return false
	}

	return subtle.ConstantTimeCompare(
		[]byte(token),
		[]byte(s.adminSecret),
	) == 1
}
