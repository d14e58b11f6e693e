package booking

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

type Storer interface {
	createOne(ctx context.Context, newBooking *Booking) error
	findAll(ctx context.Context, status BookingStatus) ([]*Booking, error)
	findByID(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	updateStatus(ctx context.Context, bookingID uuid.UUID, status BookingStatus) error
}

type serviceGetter interface {
	ServiceByID(serviceID string) (catalog.Service, error)
}

type customerUpserter interface {
	UpsertCustomer(ctx context.Context, email, name, phone string) (uuid.UUID, error)
}

type service struct {
	store   Storer
	catalog serviceGetter
	users   customerUpserter
}

func NewService(store Storer, catalogStore serviceGetter, users customerUpserter) *service {
	return &service{
		store:   store,
		catalog: catalogStore,
		users:   users,
	}
}

func (s *service) createBooking(ctx context.Context, serviceID string, req *CreateBookingRequest) (*Booking, error) {
	if _, err := s.catalog.ServiceByID(serviceID); err != nil {
		return nil, err
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

	newBooking := &Booking{
		BookingID:   uuid.New(),
		UserID:      userID,
		ServiceID:   serviceID,
		PetName:     strings.TrimSpace(req.PetName),
		PetType:     strings.TrimSpace(req.PetType),
		BookingDate: req.Date,
		BookingTime: req.Time,
		Notes:       strings.TrimSpace(req.Notes),
		Status:      StatusPending,
	}

	if err := s.store.createOne(ctx, newBooking); err != nil {
		return nil, err
	}

	return newBooking, nil
}

func (s *service) listBookings(ctx context.Context, statusFilter string) ([]*Booking, error) {
	if statusFilter == "" || statusFilter == "all" {
		return s.store.findAll(ctx, "")
	}

	status, err := ParseStatus(statusFilter)
	if err != nil {
		return nil, err
	}

	return s.store.findAll(ctx, status)
}

func (s *service) updateStatus(ctx context.Context, req *UpdateStatusRequest) (*Booking, error) {
	nextStatus, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.store.findByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(nextStatus) {
		return nil, servererrors.ErrInvalidTransition
	}

	if err := s.store.updateStatus(ctx, req.BookingID, nextStatus); err != nil {
		return nil, err
	}

	current.Status = nextStatus

	return current, nil
}
