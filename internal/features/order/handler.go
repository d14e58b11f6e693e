package order

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/cart"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/validate"
)

type servicer interface {
	checkout(ctx context.Context, sessionID uuid.UUID, req *CheckoutRequest) (*CheckoutResponse, error)
	listOrders(ctx context.Context, statusFilter string) ([]*Order, error)
	updateStatus(ctx context.Context, req *UpdateStatusRequest) (*Order, error)
}

type middleware interface {
	AdminOnly(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(orderService servicer, middleware middleware) *handler {
	return &handler{
		service:    orderService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/checkout",
		handlerutils.MakeHandler(
			h.checkoutHandler,
		),
	)

	// protected routes
	router.Get(
		"/admin/orders",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.listOrdersHandler,
			),
		),
	)

	router.Patch(
		"/admin/orders",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.updateStatusHandler,
			),
		),
	)
}

func (h *handler) checkoutHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	sessionID := cart.SessionID(w, r)

	var payload *CheckoutRequest
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

	receipt, err := h.service.checkout(ctx, sessionID, payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrEmptyCart) {
			return servererrors.New(
				http.StatusBadRequest,
				servererrors.ErrEmptyCart.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"order placed",
		receipt,
	)
}

func (h *handler) listOrdersHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	orders, err := h.service.listOrders(
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
		"orders retrieved",
		orders,
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
		return statusUpdateError(err)
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"order status updated",
		updated,
	)
}

func statusUpdateError(err error) error {
	switch {
	case errors.Is(err, servererrors.ErrNotFound):
		return servererrors.New(
			http.StatusNotFound,
			"order not found",
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
