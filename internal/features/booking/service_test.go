package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	bookings map[uuid.UUID]*Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{bookings: make(map[uuid.UUID]*Booking)}
}

func (f *fakeStore) createOne(_ context.Context, newBooking *Booking) error {
	f.bookings[newBooking.BookingID] = newBooking
	return nil
}

func (f *fakeStore) findAll(_ context.Context, status BookingStatus) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) findByID(_ context.Context, bookingID uuid.UUID) (*Booking, error) {
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil, servererrors.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeStore) updateStatus(_ context.Context, bookingID uuid.UUID, status BookingStatus) error {
	b, ok := f.bookings[bookingID]
	if !ok {
		return servererrors.ErrNotFound
	}
	b.Status = status
	return nil
}

type fakeCatalog struct {
	services map[string]catalog.Service
}

func (f *fakeCatalog) ServiceByID(serviceID string) (catalog.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok {
		return catalog.Service{}, servererrors.ErrNotFound
	}
	return svc, nil
}

type fakeUsers struct {
	userID uuid.UUID
}

func (f *fakeUsers) UpsertCustomer(_ context.Context, _, _, _ string) (uuid.UUID, error) {
	return f.userID, nil
}

func newTestService(store *fakeStore) *service {
	return NewService(
		store,
		&fakeCatalog{services: map[string]catalog.Service{
			"svc-001": {ID: "svc-001"},
		}},
		&fakeUsers{userID: uuid.New()},
	)
}

func TestCreateBooking(t *testing.T) {
	store := newFakeStore()
	bookingService := newTestService(store)

	req := &CreateBookingRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		PetName: "Buddy",
		PetType: "dog",
		Date:    "2026-09-15",
		Time:    "10:30",
		Notes:   "  first visit  ",
	}

	created, err := bookingService.createBooking(context.Background(), "svc-001", req)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, "svc-001", created.ServiceID)
	assert.Equal(t, "Buddy", created.PetName)
	assert.Equal(t, "first visit", created.Notes)
	assert.Len(t, store.bookings, 1)
}

func TestCreateBookingUnknownService(t *testing.T) {
	store := newFakeStore()
	bookingService := newTestService(store)

	_, err := bookingService.createBooking(context.Background(), "svc-missing", &CreateBookingRequest{})
	assert.ErrorIs(t, err, servererrors.ErrNotFound)
	assert.Empty(t, store.bookings)
}

func TestUpdateStatus(t *testing.T) {
	store := newFakeStore()
	bookingService := newTestService(store)

	bookingID := uuid.New()
	store.bookings[bookingID] = &Booking{
		BookingID: bookingID,
		Status:    StatusPending,
	}

	updated, err := bookingService.updateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: bookingID,
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, StatusConfirmed, store.bookings[bookingID].Status)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	store := newFakeStore()
	bookingService := newTestService(store)

	bookingID := uuid.New()
	store.bookings[bookingID] = &Booking{
		BookingID: bookingID,
		Status:    StatusCompleted,
	}

	_, err := bookingService.updateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: bookingID,
		Status:    "cancelled",
	})
	assert.ErrorIs(t, err, servererrors.ErrInvalidTransition)
	assert.Equal(t, StatusCompleted, store.bookings[bookingID].Status)
}

func TestUpdateStatusUnknown(t *testing.T) {
	bookingService := newTestService(newFakeStore())

	_, err := bookingService.updateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: uuid.New(),
		Status:    "shipped",
	})
	assert.ErrorIs(t, err, servererrors.ErrUnknownStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	bookingService := newTestService(newFakeStore())

	_, err := bookingService.updateStatus(context.Background(), &UpdateStatusRequest{
		BookingID: uuid.New(),
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, servererrors.ErrNotFound)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
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
