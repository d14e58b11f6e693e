package adoption

import "github.com/google/uuid"

// Requests

type AdoptionRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	PetExperience string `json:"petExperience"`
	Reason        string `json:"reason" validate:"required"`
}

type UpdateStatusRequest struct {
	AdoptionID uuid.UUID `json:"adoptionID" validate:"required"`
	Status     string    `json:"status" validate:"required"`
}
