package catalog

type Storer interface {
	Products() []Product
	Pets() []Pet
	Services() []Service
	ProductByID(productID string) (Product, error)
	PetByID(petID string) (Pet, error)
	ServiceByID(serviceID string) (Service, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) listProducts(category ProductCategory, featuredOnly bool) []Product {
	products := s.store.Products()

	filtered := products[:0]
	for _, product := range products {
		if category != "" && product.Category != category {
			continue
		}

		if featuredOnly && !product.Featured {
			continue
		}

		filtered = append(filtered, product)
	}

	return filtered
}

func (s *service) getProduct(productID string) (Product, error) {
	return s.store.ProductByID(productID)
}

func (s *service) listPets(species PetSpecies, availableOnly bool) []Pet {
	pets := s.store.Pets()

	filtered := pets[:0]
	for _, pet := range pets {
		if species != "" && pet.Species != species {
			continue
		}

		if availableOnly && !pet.Available {
			continue
		}

		filtered = append(filtered, pet)
	}

	return filtered
}

func (s *service) getPet(petID string) (Pet, error) {
	return s.store.PetByID(petID)
}

func (s *service) listServices(category ServiceCategory) []Service {
	services := s.store.Services()

	filtered := services[:0]
	for _, svc := range services {
		if category != "" && svc.Category != category {
			continue
		}

		filtered = append(filtered, svc)
	}

	return filtered
}

func (s *service) getService(serviceID string) (Service, error) {
	return s.store.ServiceByID(serviceID)
}
