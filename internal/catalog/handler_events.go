package catalog

import (
	"log"
	"sync"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine/event"
)

// subscriberName is the name of this event handler.
const subscriberName event.SubscriberName = "handler_event.catalog"

type stockAdjuster interface {
	AdjustStock(productID string, delta int) (int, error)
}

type HandlerEventsConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
	EventEngine   eventengine.SubscribeRegisterPublisher
	Store         stockAdjuster
	AddressChSize uint16
}

type handlerEvent struct {
	*HandlerEventsConfig
	addressCh chan any
}

// NewEventHandler wires the catalog into the event engine: every placed
// order decrements the affected products' stock, and depleted products are
// announced back on the bus.
func NewEventHandler(cfg *HandlerEventsConfig) *handlerEvent {
	if cfg.AddressChSize == 0 {
		cfg.AddressChSize = 10
	}

	if cfg.DoneCh == nil || cfg.InternalSrvWG == nil || cfg.EventEngine == nil || cfg.Store == nil {
		log.Fatalf(
			"either 'DoneCh', 'EventEngine', 'InternalSrvWG' or 'Store' is nil in '%s'",
			subscriberName,
		)
	}

	he := &handlerEvent{
		HandlerEventsConfig: cfg,
		addressCh:           make(chan any, cfg.AddressChSize),
	}

	he.registerServiceEvents()

	he.InternalSrvWG.Add(1)
	go he.listen()

	return he
}

func (h *handlerEvent) listen() {
	defer h.InternalSrvWG.Done()

	h.addSubscriptions()

	log.Printf("%s is listening...\n", subscriberName)

	for newEvent := range h.addressCh {
		switch ne := newEvent.(type) {
		case *event.OrderPlacedEvent:
			h.orderPlacedEventHandler(ne)

		default:
			log.Printf(
				"received unknown event type: %T\n",
				ne,
			)
		}
	}

	log.Printf("shutting down %s\n", subscriberName)
}

func (h *handlerEvent) orderPlacedEventHandler(newEvent *event.OrderPlacedEvent) {
	for _, line := range newEvent.Lines {
		remaining, err := h.Store.AdjustStock(
			line.ProductID,
			-line.Quantity,
		)
		if err != nil {
			log.Printf(
				"order %s references unknown product %q, stock left unchanged\n",
				newEvent.OrderID,
				line.ProductID,
			)
			continue
		}

		if remaining > 0 {
			continue
		}

		depletedEvent := &event.StockDepletedEvent{
			ProductID: line.ProductID,
		}

		h.EventEngine.Publish(
			&event.Event{
				Name:    depletedEvent.GetEventName(),
				Payload: depletedEvent,
			},
		)
	}
}

// registerServiceEvents registers the events this handler will be
// publishing for other services to subscribe to.
func (h *handlerEvent) registerServiceEvents() {
	h.EventEngine.RegisterEvents(
		event.StockDepletedEventName,
	)
}

// addSubscriptions subscribes this handler's addressCh to the events it
// consumes.
func (h *handlerEvent) addSubscriptions() {
	subscribeToEventNames := [1]event.EventName{
		event.OrderPlacedEventName,
	}

	for _, eventName := range subscribeToEventNames {
		err := h.EventEngine.Subscribe(
			eventName,
			&event.Subscriber{
				Name:      subscriberName,
				AddressCh: h.addressCh,
			},
		)
		if err != nil {
			log.Fatalf(
				"error in Subscriber: '%s' \nerror subscribing to events: %v\n",
				subscriberName,
				err,
			)
		}
	}
}
