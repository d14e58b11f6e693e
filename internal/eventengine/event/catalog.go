package event

const (
	StockDepletedEventName EventName = "catalog.stock.depleted"
)

// StockDepletedEvent is published by the catalog when an order drains a
// product's stock to zero.
type StockDepletedEvent struct {
	ProductID string
}

func (e *StockDepletedEvent) GetEventName() EventName {
	return StockDepletedEventName
}
