package user

import "github.com/google/uuid"

// Requests

type DeleteUserRequest struct {
	UserID uuid.UUID `json:"userID" validate:"required"`
}
