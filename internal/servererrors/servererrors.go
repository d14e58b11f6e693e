package servererrors

import "errors"

var (
	ErrInvalidRequestPayload = errors.New("invalid request payload")
	ErrValidationFailed      = errors.New("validation failed")
	ErrURLQueryParams        = errors.New("invalid url query params")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrNoAuthHeader          = errors.New("missing authorization header")
	ErrNotFound              = errors.New("not found")
	ErrOutOfStock            = errors.New("product is out of stock")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrUnknownStatus         = errors.New("unknown status value")
	ErrInvalidTransition     = errors.New("status transition not allowed")
	ErrPetUnavailable        = errors.New("pet is not available for adoption")
)

// ServerError is the error type handlers return when they want a specific
// HTTP status and optional per-field errors written back to the client.
// Anything else bubbling out of a handler is treated as a 500.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     any // optional details, e.g. a field -> message map
}

func New(statusCode int, message string, errs any) *ServerError {
	return &ServerError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

func (e *ServerError) Error() string {
	return e.Message
}
