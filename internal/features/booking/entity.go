package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

func ParseStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", servererrors.ErrUnknownStatus
	}
}

var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Booking struct {
	BookingID   uuid.UUID     `json:"bookingID"`
	UserID      uuid.UUID     `json:"userID"`
	UserName    string        `json:"userName,omitempty"`
	UserEmail   string        `json:"userEmail,omitempty"`
	ServiceID   string        `json:"serviceID"`
	PetName     string        `json:"petName"`
	PetType     string        `json:"petType"`
	BookingDate string        `json:"bookingDate"` // YYYY-MM-DD
	BookingTime string        `json:"bookingTime"` // HH:MM
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}
