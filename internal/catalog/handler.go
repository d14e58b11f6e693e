package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/handlerutils"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
)

type servicer interface {
	listProducts(category ProductCategory, featuredOnly bool) []Product
	getProduct(productID string) (Product, error)
	listPets(species PetSpecies, availableOnly bool) []Pet
	getPet(petID string) (Pet, error)
	listServices(category ServiceCategory) []Service
	getService(serviceID string) (Service, error)
}

type handler struct {
	service servicer
}

func NewHandler(catalogService servicer) *handler {
	return &handler{
		service: catalogService,
	}
}

func (h *handler) RegisterRoutes(router *chi.Mux) {
	router.Get(
		"/products",
		handlerutils.MakeHandler(
			h.listProductsHandler,
		),
	)

	router.Get(
		"/products/{productID}",
		handlerutils.MakeHandler(
			h.getProductHandler,
		),
	)

	router.Get(
		"/pets",
		handlerutils.MakeHandler(
			h.listPetsHandler,
		),
	)

	router.Get(
		"/pets/{petID}",
		handlerutils.MakeHandler(
			h.getPetHandler,
		),
	)

	router.Get(
		"/services",
		handlerutils.MakeHandler(
			h.listServicesHandler,
		),
	)

	router.Get(
		"/services/{serviceID}",
		handlerutils.MakeHandler(
			h.getServiceHandler,
		),
	)
}

func (h *handler) listProductsHandler(w http.ResponseWriter, r *http.Request) error {
	queries := r.URL.Query()
	locale := i18n.ParseLocale(queries.Get("locale"))

	products := h.service.listProducts(
		ProductCategory(queries.Get("category")),
		queries.Get("featured") == "true",
	)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"products retrieved",
		newLocalizedProducts(products, locale),
	)
}

func (h *handler) getProductHandler(w http.ResponseWriter, r *http.Request) error {
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	product, err := h.service.getProduct(
		chi.URLParam(r, "productID"),
	)
	if err != nil {
		return notFoundOrInternal(err, "product not found")
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"product found",
		newLocalizedProduct(product, locale),
	)
}

func (h *handler) listPetsHandler(w http.ResponseWriter, r *http.Request) error {
	queries := r.URL.Query()
	locale := i18n.ParseLocale(queries.Get("locale"))

	pets := h.service.listPets(
		PetSpecies(queries.Get("species")),
		queries.Get("available") == "true",
	)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"pets retrieved",
		newLocalizedPets(pets, locale),
	)
}

func (h *handler) getPetHandler(w http.ResponseWriter, r *http.Request) error {
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	pet, err := h.service.getPet(
		chi.URLParam(r, "petID"),
	)
	if err != nil {
		return notFoundOrInternal(err, "pet not found")
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"pet found",
		newLocalizedPet(pet, locale),
	)
}

func (h *handler) listServicesHandler(w http.ResponseWriter, r *http.Request) error {
	queries := r.URL.Query()
	locale := i18n.ParseLocale(queries.Get("locale"))

	services := h.service.listServices(
		ServiceCategory(queries.Get("category")),
	)

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"services retrieved",
		newLocalizedServices(services, locale),
	)
}

func (h *handler) getServiceHandler(w http.ResponseWriter, r *http.Request) error {
	locale := i18n.ParseLocale(r.URL.Query().Get("locale"))

	svc, err := h.service.getService(
		chi.URLParam(r, "serviceID"),
	)
	if err != nil {
		return notFoundOrInternal(err, "service not found")
	}

	return handlerutils.WriteSuccessJSON(
		w,
		http.StatusOK,
		"service found",
		newLocalizedService(svc, locale),
	)
}

func notFoundOrInternal(err error, message string) error {
	if errors.Is(err, servererrors.ErrNotFound) {
		return servererrors.New(
			http.StatusNotFound,
			message,
			nil,
		)
	}

	return err
}
