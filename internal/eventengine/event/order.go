package event

import "github.com/google/uuid"

const (
	OrderPlacedEventName EventName = "order.placed"
)

// OrderLine is the slice of an order the catalog cares about: which product
// and how many units left the shelf.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// OrderPlacedEvent is published after a checkout's order row is committed.
type OrderPlacedEvent struct {
	OrderID uuid.UUID
	Lines   []OrderLine
}

func (e *OrderPlacedEvent) GetEventName() EventName {
	return OrderPlacedEventName
}
