package catalog

import (
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
)

// Localized views flatten the bilingual pairs into the requested locale and
// attach display-ready prices, so presentation layers never re-implement
// the language pick.

type LocalizedProduct struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Category             ProductCategory `json:"category"`
	Price                float64         `json:"price"`
	PriceDisplay         string          `json:"priceDisplay"`
	OriginalPrice        float64         `json:"originalPrice,omitempty"`
	OriginalPriceDisplay string          `json:"originalPriceDisplay,omitempty"`
	Images               []string        `json:"images"`
	Description          string          `json:"description"`
	Stock                int             `json:"stock"`
	Rating               float64         `json:"rating"`
	Reviews              int             `json:"reviews"`
	Featured             bool            `json:"featured"`
}

func newLocalizedProduct(p Product, locale i18n.Locale) *LocalizedProduct {
	lp := &LocalizedProduct{
		ID:           p.ID,
		Name:         p.Name.Pick(locale),
		Category:     p.Category,
		Price:        p.Price,
		PriceDisplay: i18n.FormatCurrency(p.Price, locale),
		Images:       p.Images,
		Description:  p.Description.Pick(locale),
		Stock:        p.Stock,
		Rating:       p.Rating,
		Reviews:      p.Reviews,
		Featured:     p.Featured,
	}

	if p.OriginalPrice != 0 {
		lp.OriginalPrice = p.OriginalPrice
		lp.OriginalPriceDisplay = i18n.FormatCurrency(p.OriginalPrice, locale)
	}

	return lp
}

func newLocalizedProducts(products []Product, locale i18n.Locale) []*LocalizedProduct {
	localized := make([]*LocalizedProduct, 0, len(products))
	for _, product := range products {
		localized = append(localized, newLocalizedProduct(product, locale))
	}

	return localized
}

type LocalizedPet struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Species     PetSpecies `json:"species"`
	Breed       string     `json:"breed"`
	AgeMonths   int        `json:"ageMonths"`
	Size        PetSize    `json:"size"`
	Gender      PetGender  `json:"gender"`
	Images      []string   `json:"images"`
	Description string     `json:"description"`
	Personality string     `json:"personality"`
	Vaccinated  bool       `json:"vaccinated"`
	Neutered    bool       `json:"neutered"`
	Available   bool       `json:"available"`
}

func newLocalizedPet(p Pet, locale i18n.Locale) *LocalizedPet {
	return &LocalizedPet{
		ID:          p.ID,
		Name:        p.Name.Pick(locale),
		Species:     p.Species,
		Breed:       p.Breed.Pick(locale),
		AgeMonths:   p.AgeMonths,
		Size:        p.Size,
		Gender:      p.Gender,
		Images:      p.Images,
		Description: p.Description.Pick(locale),
		Personality: p.Personality.Pick(locale),
		Vaccinated:  p.Vaccinated,
		Neutered:    p.Neutered,
		Available:   p.Available,
	}
}

func newLocalizedPets(pets []Pet, locale i18n.Locale) []*LocalizedPet {
	localized := make([]*LocalizedPet, 0, len(pets))
	for _, pet := range pets {
		localized = append(localized, newLocalizedPet(pet, locale))
	}

	return localized
}

type LocalizedService struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        ServiceCategory `json:"category"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	PriceDisplay    string          `json:"priceDisplay"`
	DurationMinutes int             `json:"durationMinutes"`
	Image           string          `json:"image"`
	Features        []string        `json:"features"`
}

func newLocalizedService(svc Service, locale i18n.Locale) *LocalizedService {
	return &LocalizedService{
		ID:              svc.ID,
		Name:            svc.Name.Pick(locale),
		Category:        svc.Category,
		Description:     svc.Description.Pick(locale),
		Price:           svc.Price,
		PriceDisplay:    i18n.FormatCurrency(svc.Price, locale),
		DurationMinutes: svc.DurationMinutes,
		Image:           svc.Image,
		Features:        svc.Features.Pick(locale),
	}
}

func newLocalizedServices(services []Service, locale i18n.Locale) []*LocalizedService {
	localized := make([]*LocalizedService, 0, len(services))
	for _, svc := range services {
		localized = append(localized, newLocalizedService(svc, locale))
	}

	return localized
}
