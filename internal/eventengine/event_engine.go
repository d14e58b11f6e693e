package eventengine

import (
	"fmt"
	"log"
	"sync"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine/event"
)

type Publisher interface {
	Publish(event *event.Event) error
}

type Subscriber interface {
	Subscribe(toEventName event.EventName, subscriber *event.Subscriber) error
}

type RegisterPublisher interface {
	Publisher
	RegisterEvents(eventNames ...event.EventName)
}

type SubscribeRegisterPublisher interface {
	Subscriber
	RegisterPublisher
}

type subscribers struct {
	names      []event.SubscriberName
	addressChs []chan<- any
}

type EventEngineConfig struct {
	DoneCh        <-chan struct{}
	InternalSrvWG *sync.WaitGroup
}

// eventEngine is the in-process pub/sub bus connecting features that must
// not import each other, e.g. order placement driving catalog stock.
// Events must be registered before anyone publishes or subscribes to them.
type eventEngine struct {
	*EventEngineConfig

	eventEngineCh chan *event.Event
	events        map[event.EventName]*subscribers
}

func NewEventEngine(cfg *EventEngineConfig) SubscribeRegisterPublisher {
	if cfg == nil || cfg.DoneCh == nil || cfg.InternalSrvWG == nil {
		log.Fatalln("event engine config, DoneCh and InternalSrvWG are all required")
	}

	e := &eventEngine{
		EventEngineConfig: cfg,
		events:            make(map[event.EventName]*subscribers, 20),
		eventEngineCh:     make(chan *event.Event, 20),
	}

	e.InternalSrvWG.Add(1)
	go e.listen()

	return e
}

func (e *eventEngine) listen() {
	defer e.InternalSrvWG.Done()

	log.Println("event engine is listening...")

	for {
		select {
		case <-e.DoneCh:
			close(e.eventEngineCh)

			// drain anything published before shutdown was signalled
			for pending := range e.eventEngineCh {
				e.broadcast(pending)
			}

			e.closeSubscriberChannels()
			log.Println("event engine has shut down")
			return

		case newEvent, isOpen := <-e.eventEngineCh:
			if !isOpen {
				return
			}

			e.broadcast(newEvent)
		}
	}
}

func (e *eventEngine) broadcast(newEvent *event.Event) {
	subs, exists := e.events[newEvent.Name]
	if !exists {
		log.Printf(
			"event %q not found. check your event handler\n",
			newEvent.Name,
		)
		return
	}

	for i, addressCh := range subs.addressChs {
		if addressCh == nil {
			log.Printf(
				"subscriber %q has a nil addressCh. check that its handler was initialized\n",
				subs.names[i],
			)
			continue
		}

		addressCh <- newEvent.Payload
	}
}

// RegisterEvents adds every event a publisher can emit to the engine.
//
// IMPORTANT: register an event before publishing or subscribing to it.
func (e *eventEngine) RegisterEvents(eventNames ...event.EventName) {
	for _, eventName := range eventNames {
		if _, exists := e.events[eventName]; exists {
			log.Printf("event %q already registered\n", eventName)
			continue
		}

		e.events[eventName] = &subscribers{}
	}

	log.Println("registered events:", eventNames)
}

func (e *eventEngine) Subscribe(toEventName event.EventName, newSubscriber *event.Subscriber) error {
	subs, ok := e.events[toEventName]
	if !ok {
		return fmt.Errorf(
			"event %q not found. make sure its publisher called RegisterEvents first",
			toEventName,
		)
	}

	subs.names = append(subs.names, newSubscriber.Name)
	subs.addressChs = append(subs.addressChs, newSubscriber.AddressCh)

	return nil
}

func (e *eventEngine) Publish(newEvent *event.Event) error {
	if _, exists := e.events[newEvent.Name]; !exists {
		return fmt.Errorf(
			"event %q not found. make sure its publisher called RegisterEvents first",
			newEvent.Name,
		)
	}

	e.eventEngineCh <- newEvent

	return nil
}

func (e *eventEngine) closeSubscriberChannels() {
	closed := make(map[chan<- any]struct{})

	for _, subs := range e.events {
		for _, addressCh := range subs.addressChs {
			if addressCh == nil {
				continue
			}

			if _, alreadyClosed := closed[addressCh]; alreadyClosed {
				continue
			}

			close(addressCh)
			closed[addressCh] = struct{}{}
		}
	}
}
