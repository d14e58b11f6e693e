package booking

import "github.com/google/uuid"

// Requests

type CreateBookingRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	PetName string `json:"petName" validate:"required"`
	PetType string `json:"petType" validate:"required"`
	Date    string `json:"date" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Notes   string `json:"notes"`
}

type UpdateStatusRequest struct {
	BookingID uuid.UUID `json:"bookingID" validate:"required"`
	Status    string    `json:"status" validate:"required"`
}
