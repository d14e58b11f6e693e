package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager owns every live session's cart. Carts exist only in process
// memory and die with it; there is deliberately no backing store.
type Manager struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

func NewManager() *Manager {
	return &Manager{
		carts: make(map[uuid.UUID]*Cart),
	}
}

// Cart returns the session's cart, creating an empty one on first touch.
func (m *Manager) Cart(sessionID uuid.UUID) *Cart {
	m.mu.RLock()
	c, exists := m.carts[sessionID]
	m.mu.RUnlock()

	if exists {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// re-check, another request may have created it meanwhile
	if c, exists := m.carts[sessionID]; exists {
		return c
	}

	c = New()
	m.carts[sessionID] = c

	return c
}

// Drop forgets a session's cart entirely.
func (m *Manager) Drop(sessionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)
}
