package adoption

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

type AdoptionStatus string

const (
	StatusPending   AdoptionStatus = "pending"
	StatusApproved  AdoptionStatus = "approved"
	StatusRejected  AdoptionStatus = "rejected"
	StatusCompleted AdoptionStatus = "completed"
)

func ParseStatus(s string) (AdoptionStatus, error) {
	switch AdoptionStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return AdoptionStatus(s), nil
	default:
		return "", servererrors.ErrUnknownStatus
	}
}

var allowedTransitions = map[AdoptionStatus][]AdoptionStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusCompleted},
}

func (s AdoptionStatus) CanTransitionTo(next AdoptionStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

type Adoption struct {
	AdoptionID    uuid.UUID      `json:"adoptionID"`
	UserID        uuid.UUID      `json:"userID"`
	UserName      string         `json:"userName,omitempty"`
	UserEmail     string         `json:"userEmail,omitempty"`
	PetID         string         `json:"petID"`
	Address       string         `json:"address"`
	PetExperience string         `json:"petExperience,omitempty"`
	Reason        string         `json:"reason"`
	Status        AdoptionStatus `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}
