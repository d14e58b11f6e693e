package cart

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/validate"
)

// SessionCookieName carries the anonymous cart session id. The checkout
// handler reads the same cookie to find the cart being purchased.
const SessionCookieName = "cartSession"

type servicer interface {
	addItem(sessionID uuid.UUID, req *AddItemRequest) error
	updateQuantity(sessionID uuid.UUID, productID string, quantity int)
	removeItem(sessionID uuid.UUID, productID string)
	Clear(sessionID uuid.UUID)
	view(sessionID uuid.UUID, locale i18n.Locale) *CartView
}

type handler struct {
	service servicer
}

func NewHandler(cartService servicer) *handler {
	return &handler{
		service: cartService,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/cart",
		handlerutils.MakeHandler(
			h.getCartHandler,
		),
	)

	router.Post(
		"/cart/items",
		handlerutils.MakeHandler(
			h.addItemHandler,
		),
	)

	router.Patch(
		"/cart/items/{productID}",
		handlerutils.MakeHandler(
			h.updateQuantityHandler,
		),
	)

	router.Delete(
		"/cart/items/{productID}",
		handlerutils.MakeHandler(
			h.removeItemHandler,
		),
	)

	router.Delete(
		"/cart",
		handlerutils.MakeHandler(
			h.clearCartHandler,
		),
	)
}

func (h *handler) getCartHandler(w http.ResponseWriter, r *http.Request) error {
	sessionID := SessionID(w, r)
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"cart retrieved",
		h.service.view(sessionID, locale),
	)
}

func (h *handler) addItemHandler(w http.ResponseWriter, r *http.Request) error {
	sessionID := SessionID(w, r)
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	var payload *AddItemRequest
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

	if err := h.service.addItem(sessionID, payload); err != nil {
		switch {
		case errors.Is(err, servererrors.ErrNotFound):
			return servererrors.New(
				http.StatusNotFound,
				"product not found",
				nil,
			)

		case errors.Is(err, servererrors.ErrOutOfStock):
			return servererrors.New(
				http.StatusConflict,
				servererrors.ErrOutOfStock.Error(),
				nil,
			)

		default:
			return err
		}
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"item added to cart",
		h.service.view(sessionID, locale),
	)
}

func (h *handler) updateQuantityHandler(w http.ResponseWriter, r *http.Request) error {
	sessionID := SessionID(w, r)
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	var payload *UpdateQuantityRequest
	defer r.Body.Close()

	if err := handlerutils.ParseJSON(r, &payload); err != nil {
		return servererrors.New(
			http.StatusBadRequest,
			servererrors.ErrInvalidRequestPayload.Error(),
			nil,
		)
	}

	h.service.updateQuantity(
		sessionID,
		chi.URLParam(r, "productID"),
		payload.Quantity,
	)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"cart updated",
		h.service.view(sessionID, locale),
	)
}

func (h *handler) removeItemHandler(w http.ResponseWriter, r *http.Request) error {
	sessionID := SessionID(w, r)
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	h.service.removeItem(
		sessionID,
		chi.URLParam(r, "productID"),
	)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"item removed from cart",
		h.service.view(sessionID, locale),
	)
}

func (h *handler) clearCartHandler(w http.ResponseWriter, r *http.Request) error {
	sessionID := SessionID(w, r)
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	h.service.Clear(sessionID)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"cart cleared",
		h.service.view(sessionID, locale),
	)
}

// SessionID returns the request's cart session id, minting a new cookie
// when the request carries none (or a malformed one).
func SessionID(w http.ResponseWriter, r *http.Request) uuid.UUID {
	cookie, err := r.Cookie(SessionCookieName)
	if err == nil {
		if sessionID, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			return sessionID
		}
	}

	sessionID := uuid.New()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID
}
