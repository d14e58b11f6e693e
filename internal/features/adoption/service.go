package adoption

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

type Storer interface {
	createOne(ctx context.Context, newAdoption *Adoption) error
	findAll(ctx context.Context, status AdoptionStatus) ([]*Adoption, error)
	findByID(ctx context.Context, adoptionID uuid.UUID) (*Adoption, error)
	updateStatus(ctx context.Context, adoptionID uuid.UUID, status AdoptionStatus) error
}

type petStorer interface {
	PetByID(petID string) (catalog.Pet, error)
	SetPetAvailability(petID string, available bool) error
}

type customerUpserter interface {
	UpsertCustomer(ctx context.Context, email, name, phone string) (uuid.UUID, error)
}

type service struct {
	store   Storer
	catalog petStorer
	users   customerUpserter
}

func NewService(store Storer, catalogStore petStorer, users customerUpserter) *service {
	return &service{
		store:   store,
		catalog: catalogStore,
		users:   users,
	}
}

func (s *service) createApplication(ctx context.Context, petID string, req *AdoptionRequest) (*Adoption, error) {
	pet, err := s.catalog.PetByID(petID)
	if err != nil {
		return nil, err
	}

	if !pet.Available {
		return nil, servererrors.ErrPetUnavailable
	}

	userID, err := s.users.UpsertCustomer(
		ctx,
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Phone),
	)
	if err != nil {
		return nil, err
	}

	newAdoption := &Adoption{
		AdoptionID:    uuid.New(),
		UserID:        userID,
		PetID:         petID,
		Address:       strings.TrimSpace(req.Address),
		PetExperience: strings.TrimSpace(req.PetExperience),
		Reason:        strings.TrimSpace(req.Reason),
		Status:        StatusPending,
	}

	if err := s.store.createOne(ctx, newAdoption); err != nil {
		return nil, err
	}

	return newAdoption, nil
}

func (s *service) listAdoptions(ctx context.Context, statusFilter string) ([]*Adoption, error) {
	if statusFilter == "" || statusFilter == "all" {
		return s.store.findAll(ctx, "")
	}

	status, err := ParseStatus(statusFilter)
	if err != nil {
		return nil, err
	}

	return s.store.findAll(ctx, status)
}

func (s *service) updateStatus(ctx context.Context, req *UpdateStatusRequest) (*Adoption, error) {
	nextStatus, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.store.findByID(ctx, req.AdoptionID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(nextStatus) {
		return nil, servererrors.ErrInvalidTransition
	}

	if err := s.store.updateStatus(ctx, req.AdoptionID, nextStatus); err != nil {
		return nil, err
	}

	// An approved adoption takes the pet off the storefront. The status
	// row is already committed, so a failed availability flip rolls the
	// status back to keep the two in step.
	if nextStatus == StatusApproved {
		if err := s.catalog.SetPetAvailability(current.PetID, false); err != nil {
			if revertErr := s.store.updateStatus(ctx, req.AdoptionID, current.Status); revertErr != nil {
				log.Printf(
					"failed to revert adoption %s status after availability error: %v",
					req.AdoptionID,
					revertErr,
				)
			}

			return nil, err
		}
	}

	current.Status = nextStatus

	return current, nil
}
