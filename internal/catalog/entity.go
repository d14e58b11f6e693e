package catalog

import (
	"fmt"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
)

type ProductCategory string

const (
	CategoryFood        ProductCategory = "food"
	CategoryToys        ProductCategory = "toys"
	CategoryAccessories ProductCategory = "accessories"
	CategoryHealth      ProductCategory = "health"
	CategoryGrooming    ProductCategory = "grooming"
)

type PetSpecies string

const (
	SpeciesDog     PetSpecies = "dog"
	SpeciesCat     PetSpecies = "cat"
	SpeciesBird    PetSpecies = "bird"
	SpeciesRabbit  PetSpecies = "rabbit"
	SpeciesHamster PetSpecies = "hamster"
)

type PetSize string

const (
	SizeSmall  PetSize = "small"
	SizeMedium PetSize = "medium"
	SizeLarge  PetSize = "large"
)

type PetGender string

const (
	GenderMale   PetGender = "male"
	GenderFemale PetGender = "female"
)

type ServiceCategory string

const (
	ServiceGrooming   ServiceCategory = "grooming"
	ServiceBoarding   ServiceCategory = "boarding"
	ServiceVeterinary ServiceCategory = "veterinary"
	ServiceTraining   ServiceCategory = "training"
)

type Product struct {
	ID            string          `json:"id" yaml:"id"`
	Name          i18n.Text       `json:"name" yaml:"name"`
	Category      ProductCategory `json:"category" yaml:"category"`
	Price         float64         `json:"price" yaml:"price"`
	OriginalPrice float64         `json:"originalPrice,omitempty" yaml:"originalPrice"` // 0 means no discount display
	Images        []string        `json:"images" yaml:"images"`
	Description   i18n.Text       `json:"description" yaml:"description"`
	Stock         int             `json:"stock" yaml:"stock"`
	Rating        float64         `json:"rating" yaml:"rating"`
	Reviews       int             `json:"reviews" yaml:"reviews"`
	Featured      bool            `json:"featured" yaml:"featured"`
}

func (p *Product) validate() error {
	if p.ID == "" {
		return fmt.Errorf("product has no id")
	}

	if p.Price <= 0 {
		return fmt.Errorf("product %q: price must be > 0", p.ID)
	}

	if p.Stock < 0 {
		return fmt.Errorf("product %q: stock must be >= 0", p.ID)
	}

	if p.OriginalPrice != 0 && p.OriginalPrice <= p.Price {
		return fmt.Errorf(
			"product %q: originalPrice must be greater than price",
			p.ID,
		)
	}

	return nil
}

type Pet struct {
	ID          string     `json:"id" yaml:"id"`
	Name        i18n.Text  `json:"name" yaml:"name"`
	Species     PetSpecies `json:"species" yaml:"species"`
	Breed       i18n.Text  `json:"breed" yaml:"breed"`
	AgeMonths   int        `json:"ageMonths" yaml:"ageMonths"`
	Size        PetSize    `json:"size" yaml:"size"`
	Gender      PetGender  `json:"gender" yaml:"gender"`
	Images      []string   `json:"images" yaml:"images"`
	Description i18n.Text  `json:"description" yaml:"description"`
	Personality i18n.Text  `json:"personality" yaml:"personality"`
	Vaccinated  bool       `json:"vaccinated" yaml:"vaccinated"`
	Neutered    bool       `json:"neutered" yaml:"neutered"`
	Available   bool       `json:"available" yaml:"available"`
}

type Service struct {
	ID              string          `json:"id" yaml:"id"`
	Name            i18n.Text       `json:"name" yaml:"name"`
	Category        ServiceCategory `json:"category" yaml:"category"`
	Description     i18n.Text       `json:"description" yaml:"description"`
	Price           float64         `json:"price" yaml:"price"`
	DurationMinutes int             `json:"durationMinutes" yaml:"durationMinutes"`
	Image           string          `json:"image" yaml:"image"`
	Features        i18n.TextList   `json:"features" yaml:"features"`
}
