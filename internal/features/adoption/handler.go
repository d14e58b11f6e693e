package adoption

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
	createApplication(ctx context.Context, petID string, req *AdoptionRequest) (*Adoption, error)
	listAdoptions(ctx context.Context, statusFilter string) ([]*Adoption, error)
	updateStatus(ctx context.Context, req *UpdateStatusRequest) (*Adoption, error)
}

type middleware interface {
	AdminOnly(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(adoptionService servicer, middleware middleware) *handler {
	return &handler{
		service:    adoptionService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/pets/{petID}/adopt",
		handlerutils.MakeHandler(
			h.createApplicationHandler,
		),
	)

	// protected routes
	router.Get(
		"/admin/adoptions",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.listAdoptionsHandler,
			),
		),
	)

	router.Patch(
		"/admin/adoptions",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.updateStatusHandler,
			),
		),
	)
}

func (h *handler) createApplicationHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *AdoptionRequest
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

	newAdoption, err := h.service.createApplication(
		ctx,
		chi.URLParam(r, "petID"),
		payload,
	)
	if err != nil {
		switch {
		case errors.Is(err, servererrors.ErrNotFound):
			return servererrors.New(
				http.StatusNotFound,
				"pet not found",
				nil,
			)

		case errors.Is(err, servererrors.ErrPetUnavailable):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrPetUnavailable.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"adoption application submitted",
		newAdoption,
	)
}

func (h *handler) listAdoptionsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	adoptions, err := h.service.listAdoptions(
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
		"adoptions retrieved",
		adoptions,
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
				"adoption not found",
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
		"adoption status updated",
		updated,
	)
}
