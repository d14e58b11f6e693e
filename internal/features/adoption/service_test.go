package adoption

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	adoptions map[uuid.UUID]*Adoption
}

func newFakeStore() *fakeStore {
	return &fakeStore{adoptions: make(map[uuid.UUID]*Adoption)}
}

func (f *fakeStore) createOne(_ context.Context, newAdoption *Adoption) error {
	f.adoptions[newAdoption.AdoptionID] = newAdoption
	return nil
}

func (f *fakeStore) findAll(_ context.Context, status AdoptionStatus) ([]*Adoption, error) {
	var out []*Adoption
	for _, a := range f.adoptions {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) findByID(_ context.Context, adoptionID uuid.UUID) (*Adoption, error) {
	a, ok := f.adoptions[adoptionID]
	if !ok {
		return nil, servererrors.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) updateStatus(_ context.Context, adoptionID uuid.UUID, status AdoptionStatus) error {
	a, ok := f.adoptions[adoptionID]
	if !ok {
		return servererrors.ErrNotFound
	}
	a.Status = status
	return nil
}

type fakePetStore struct {
	pets        map[string]catalog.Pet
	failFlip    bool
	unavailable map[string]bool
}

func newFakePetStore() *fakePetStore {
	return &fakePetStore{
		pets: map[string]catalog.Pet{
			"pet-001": {ID: "pet-001", Available: true},
			"pet-002": {ID: "pet-002", Available: false},
		},
		unavailable: make(map[string]bool),
	}
}

func (f *fakePetStore) PetByID(petID string) (catalog.Pet, error) {
	pet, ok := f.pets[petID]
	if !ok {
		return catalog.Pet{}, servererrors.ErrNotFound
	}
	return pet, nil
}

func (f *fakePetStore) SetPetAvailability(petID string, available bool) error {
	if f.failFlip {
		return errors.New("catalog write failed")
	}
	pet, ok := f.pets[petID]
	if !ok {
		return servererrors.ErrNotFound
	}
	pet.Available = available
	f.pets[petID] = pet
	if !available {
		f.unavailable[petID] = true
	}
	return nil
}

type fakeUsers struct {
	userID uuid.UUID
}

func (f *fakeUsers) UpsertCustomer(_ context.Context, _, _, _ string) (uuid.UUID, error) {
	return f.userID, nil
}

func validRequest() *AdoptionRequest {
	return &AdoptionRequest{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "555-0100",
		Address:       "12 Garden Lane",
		PetExperience: "two previous dogs",
		Reason:        "looking for a companion",
	}
}

func TestCreateApplication(t *testing.T) {
	store := newFakeStore()
	adoptionService := NewService(store, newFakePetStore(), &fakeUsers{userID: uuid.New()})

	created, err := adoptionService.createApplication(context.Background(), "pet-001", validRequest())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "pet-001", created.PetID)
	assert.Len(t, store.adoptions, 1)
}

func TestCreateApplicationUnknownPet(t *testing.T) {
	adoptionService := NewService(newFakeStore(), newFakePetStore(), &fakeUsers{userID: uuid.New()})

	_, err := adoptionService.createApplication(context.Background(), "pet-missing", validRequest())
	assert.ErrorIs(t, err, servererrors.ErrNotFound)
}

func TestCreateApplicationUnavailablePet(t *testing.T) {
	store := newFakeStore()
	adoptionService := NewService(store, newFakePetStore(), &fakeUsers{userID: uuid.New()})

	_, err := adoptionService.createApplication(context.Background(), "pet-002", validRequest())
	assert.ErrorIs(t, err, servererrors.ErrPetUnavailable)
	assert.Empty(t, store.adoptions)
}

func TestApproveMarksPetUnavailable(t *testing.T) {
	store := newFakeStore()
	pets := newFakePetStore()
	adoptionService := NewService(store, pets, &fakeUsers{userID: uuid.New()})

	adoptionID := uuid.New()
	store.adoptions[adoptionID] = &Adoption{
		AdoptionID: adoptionID,
		PetID:      "pet-001",
		Status:     StatusPending,
	}

	updated, err := adoptionService.updateStatus(context.Background(), &UpdateStatusRequest{
		AdoptionID: adoptionID,
		Status:     "approved",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, updated.Status)
	assert.True(t, pets.unavailable["pet-001"])
	assert.False(t, pets.pets["pet-001"].Available)
}

func TestApproveRevertsOnAvailabilityFailure(t *testing.T) {
	store := newFakeStore()
	pets := newFakePetStore()
	pets.failFlip = true
	adoptionService := NewService(store, pets, &fakeUsers{userID: uuid.New()})

	adoptionID := uuid.New()
	store.adoptions[adoptionID] = &Adoption{
		AdoptionID: adoptionID,
		PetID:      "pet-001",
		Status:     StatusPending,
	}

	_, err := adoptionService.updateStatus(context.Background(), &UpdateStatusRequest{
		AdoptionID: adoptionID,
		Status:     "approved",
	})
	require.Error(t, err)

	assert.Equal(t, StatusPending, store.adoptions[adoptionID].Status)
	assert.True(t, pets.pets["pet-001"].Available)
}

func TestRejectLeavesPetAvailable(t *testing.T) {
	store := newFakeStore()
	pets := newFakePetStore()
	adoptionService := NewService(store, pets, &fakeUsers{userID: uuid.New()})

	adoptionID := uuid.New()
	store.adoptions[adoptionID] = &Adoption{
		AdoptionID: adoptionID,
		PetID:      "pet-001",
		Status:     StatusPending,
	}

	updated, err := adoptionService.updateStatus(context.Background(), &UpdateStatusRequest{
		AdoptionID: adoptionID,
		Status:     "rejected",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, updated.Status)
	assert.True(t, pets.pets["pet-001"].Available)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    AdoptionStatus
		to      AdoptionStatus
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusCompleted, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusCompleted, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(
			t,
			tc.allowed,
			tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to,
		)
	}
}
