package catalog

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var seedFS embed.FS

type productSeed struct {
	Products []Product `yaml:"products"`
}

type petSeed struct {
	Pets []Pet `yaml:"pets"`
}

type serviceSeed struct {
	Services []Service `yaml:"services"`
}

// Store holds the shop's reference data, parsed once from the embedded
// seed files. Reads hand out copies so callers can never mutate the
// collections behind the store's back; the only sanctioned mutations are
// pet availability (adoption approval) and product stock (order placement).
type Store struct {
	mu sync.RWMutex

	products []Product
	pets     []Pet
	services []Service

	productIdx map[string]int
	petIdx     map[string]int
	serviceIdx map[string]int
}

func NewStore() (*Store, error) {
	s := &Store{
		productIdx: make(map[string]int),
		petIdx:     make(map[string]int),
		serviceIdx: make(map[string]int),
	}

	if err := s.loadSeedData(); err != nil {
		return nil, fmt.Errorf("failed to load catalog seed data: %w", err)
	}

	return s, nil
}

func (s *Store) loadSeedData() error {
	var products productSeed
	if err := unmarshalSeedFile("data/products.yaml", &products); err != nil {
		return err
	}

	var pets petSeed
	if err := unmarshalSeedFile("data/pets.yaml", &pets); err != nil {
		return err
	}

	var services serviceSeed
	if err := unmarshalSeedFile("data/services.yaml", &services); err != nil {
		return err
	}

	for i, product := range products.Products {
		if err := product.validate(); err != nil {
			return err
		}

		if _, exists := s.productIdx[product.ID]; exists {
			return fmt.Errorf("duplicate product id %q", product.ID)
		}

		s.productIdx[product.ID] = i
	}
	s.products = products.Products

	for i, pet := range pets.Pets {
		if _, exists := s.petIdx[pet.ID]; exists {
			return fmt.Errorf("duplicate pet id %q", pet.ID)
		}

		s.petIdx[pet.ID] = i
	}
	s.pets = pets.Pets

	for i, service := range services.Services {
		if _, exists := s.serviceIdx[service.ID]; exists {
			return fmt.Errorf("duplicate service id %q", service.ID)
		}

		s.serviceIdx[service.ID] = i
	}
	s.services = services.Services

	return nil
}

func unmarshalSeedFile(name string, out any) error {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]Product, len(s.products))
	copy(products, s.products)

	return products
}

func (s *Store) Pets() []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pets := make([]Pet, len(s.pets))
	copy(pets, s.pets)

	return pets
}

func (s *Store) Services() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]Service, len(s.services))
	copy(services, s.services)

	return services
}

func (s *Store) ProductByID(productID string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.productIdx[productID]
	if !ok {
		return Product{}, servererrors.ErrNotFound
	}

	return s.products[i], nil
}

func (s *Store) PetByID(petID string) (Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.petIdx[petID]
	if !ok {
		return Pet{}, servererrors.ErrNotFound
	}

	return s.pets[i], nil
}

func (s *Store) ServiceByID(serviceID string) (Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.serviceIdx[serviceID]
	if !ok {
		return Service{}, servererrors.ErrNotFound
	}

	return s.services[i], nil
}

// SetPetAvailability flips a pet's available flag. Called by the adoption
// workflow when an application is approved or an approval is rolled back.
func (s *Store) SetPetAvailability(petID string, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.petIdx[petID]
	if !ok {
		return servererrors.ErrNotFound
	}

	s.pets[i].Available = available

	return nil
}

// AdjustStock applies a delta to a product's stock count, flooring at zero,
// and returns the remaining stock.
func (s *Store) AdjustStock(productID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.productIdx[productID]
	if !ok {
		return 0, servererrors.ErrNotFound
	}

	stock := s.products[i].Stock + delta
	if stock < 0 {
		stock = 0
	}

	s.products[i].Stock = stock

	return stock, nil
}
