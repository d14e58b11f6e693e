package admin

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
	login(req *LoginRequest) (*LoginResponse, error)
	stats(ctx context.Context) (*StatsResponse, error)
}

type middleware interface {
	AdminOnly(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(adminService servicer, middleware middleware) *handler {
	return &handler{
		service:    adminService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/admin/login",
		handlerutils.MakeHandler(
			h.loginHandler,
		),
	)

	// protected routes
	router.Get(
		"/admin/stats",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.statsHandler,
			),
		),
	)
}

func (h *handler) loginHandler(w http.ResponseWriter, r *http.Request) error {
	var payload *LoginRequest
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

	resp, err := h.service.login(payload)
	if err != nil {
		if errors.Is(err, servererrors.ErrUnauthorized) {
			return servererrors.New(
				http.StatusUnauthorized,
				servererrors.ErrUnauthorized.Error(),
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"login successful",
		resp,
	)
}

func (h *handler) statsHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	stats, err := h.service.stats(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"stats retrieved",
		stats,
	)
}
