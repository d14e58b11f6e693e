package middlewares

type tokenVerifier interface {
	VerifyToken(token string) bool
}

type middleware struct {
	tokens tokenVerifier
}

func NewMiddleware(tokens tokenVerifier) *middleware {
	return &middleware{
		tokens: tokens,
	}
}
