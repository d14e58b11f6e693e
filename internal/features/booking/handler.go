package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/validate"
)

type servicer interface {
	createBooking(ctx context.Context, serviceID string, req *CreateBookingRequest) (*Booking, error)
	listBookings(ctx context.Context, statusFilter string) ([]*Booking, error)
	updateStatus(ctx context.Context, req *UpdateStatusRequest) (*Booking, error)
}

type middleware interface {
	AdminOnly(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(bookingService servicer, middleware middleware) *handler {
	return &handler{
		service:    bookingService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/services/{serviceID}/book",
		handlerutils.MakeHandler(
			h.createBookingHandler,
		),
	)

	// protected routes
	router.Get(
		"/admin/bookings",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.listBookingsHandler,
			),
		),
	)

	router.Patch(
		"/admin/bookings",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.updateStatusHandler,
			),
		),
	)
}

func (h *handler) createBookingHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *CreateBookingRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	newBooking, err := h.service.createBooking(
		ctx,
		chi.URLParam(r, "serviceID"),
		payload,
	)
	if err != nil {
		if errors.Is(err, servererrors.ErrNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				"service not found",
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"booking created",
		newBooking,
	)
}

func (h *handler) listBookingsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	bookings, err := h.service.listBookings(
		ctx,
		r.URL.Query().Get("status"),
	)
	if err != nil {
		if errors.Is(err, servererrors.ErrUnknownStatus) {
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrUnknownStatus.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"bookings retrieved",
		bookings,
	)
}

func (h *handler) updateStatusHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *UpdateStatusRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	if err := validate.StructFields(payload); err != nil {
		return servererrors.New(
			http.StatusUnprocessableEntity,
			servererrors.ErrValidationFailed.Error(),
			err,
		)
	}

	updated, err := h.service.updateStatus(ctx, payload)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrNotFound):
			return servererrors.New(
				http.StatusNotFound,
				"booking not found",
				nil,
			)

		case errors.Is(err, servererrors.ErrUnknownStatus):
			return servererrors.New(
				http.StatusUnprocessableEntity,
				servererrors.ErrUnknownStatus.Error(),
				nil,
			)

		case errors.Is(err, servererrors.ErrInvalidTransition):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrInvalidTransition.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"booking status updated",
		updated,
	)
}
