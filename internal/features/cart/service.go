package cart

import (
	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
)

type productGetter interface {
	ProductByID(productID string) (catalog.Product, error)
}

type service struct {
	carts   *Manager
	catalog productGetter
}

func NewService(carts *Manager, catalogStore productGetter) *service {
	return &service{
		carts:   carts,
		catalog: catalogStore,
	}
}

func (s *service) addItem(sessionID uuid.UUID, req *AddItemRequest) error {
	product, err := s.catalog.ProductByID(req.ProductID)
	if err != nil {
		return err
	}

	return s.carts.Cart(sessionID).AddItem(product, req.Quantity)
}

func (s *service) updateQuantity(sessionID uuid.UUID, productID string, quantity int) {
	s.carts.Cart(sessionID).UpdateQuantity(productID, quantity)
}

func (s *service) removeItem(sessionID uuid.UUID, productID string) {
	s.carts.Cart(sessionID).RemoveItem(productID)
}

func (s *service) view(sessionID uuid.UUID, locale i18n.Locale) *CartView {
	return newCartView(s.carts.Cart(sessionID), locale)
}

// Items exposes a session's line items to other features, e.g. checkout.
func (s *service) Items(sessionID uuid.UUID) []CartItem {
	return s.carts.Cart(sessionID).Items()
}

// Clear empties a session's cart. Checkout calls this once an order is
// committed.
func (s *service) Clear(sessionID uuid.UUID) {
	s.carts.Cart(sessionID).Clear()
}
