package middlewares

import (
	"net/http"
	"strings"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

// AdminOnly guards a handler behind the shared admin secret presented as a
// bearer token. A 401 is the caller's cue to prompt re-authentication.
func (mw *middleware) AdminOnly(h handlerutils.APIHandler) handlerutils.APIHandler {
	return func(w http.ResponseWriter, r *http.Request) error {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrNoAuthHeader.Error(),
				nil,
			)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		if !mw.tokens.VerifyToken(token) {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorized.Error(),
				nil,
			)
		}

		return h(w, r)
	}
}
