package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/validate"
)

type servicer interface {
	listUsers(ctx context.Context) ([]*User, error)
	deleteUser(ctx context.Context, userID uuid.UUID) error
}

type middleware interface {
	AdminOnly(h handlerutils.APIHandler) handlerutils.APIHandler
}

type handler struct {
	service    servicer
	middleware middleware
}

func NewHandler(userService servicer, middleware middleware) *handler {
	return &handler{
		service:    userService,
		middleware: middleware,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	// protected routes
	router.Get(
		"/admin/users",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.listUsersHandler,
			),
		),
	)

	router.Delete(
		"/admin/users",
		handlerutils.MakeHandler(
			h.middleware.AdminOnly(
				h.deleteUserHandler,
			),
		),
	)
}

func (h *handler) listUsersHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	users, err := h.service.listUsers(ctx)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"users retrieved",
		users,
	)
}

func (h *handler) deleteUserHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *DeleteUserRequest
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

	if err := h.service.deleteUser(ctx, payload.UserID); err != nil {
		if errors.Is(err, servererrors.ErrNotFound) {
			return servererrors.New(
				http.StatusNotFound,
				"user not found",
				nil,
			)
		}

		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"user deleted",
		nil,
	)
}
