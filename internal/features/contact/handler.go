package contact

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/validate"
)

type servicer interface {
	submitMessage(ctx context.Context, req *ContactRequest) (uuid.UUID, error)
}

type handler struct {
	service servicer
}

func NewHandler(contactService servicer) *handler {
	return &handler{
		service: contactService,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Post(
		"/contact",
		handlerutils.MakeHandler(
			h.submitMessageHandler,
		),
	)
}

func (h *handler) submitMessageHandler(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(
		r.Context(),
		(30 * time.Second),
	)
	defer cancel()

	var payload *ContactRequest
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

	messageID, err := h.service.submitMessage(ctx, payload)
	if err != nil {
		return err
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusCreated,
		"message received",
		map[string]any{"messageID": messageID},
	)
}
