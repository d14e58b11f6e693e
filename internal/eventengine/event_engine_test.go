package eventengine

import (
	"sync"
	"testing"

	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine/event"
)

func Test_eventEngine(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := &eventEngine{
		EventEngineConfig: &EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
		events:        make(map[event.EventName]*subscribers, 20),
		eventEngineCh: make(chan *event.Event, 1),
	}

	internalSrvWG.Add(1)
	go engine.listen()

	const testEventName event.EventName = "test.event.engine.event.name"
	engine.RegisterEvents(testEventName)

	var mu sync.Mutex
	received := make(map[event.SubscriberName][]any)

	// two subscribers on the same event, both must see every payload
	for _, name := range []event.SubscriberName{"test_subscriber.1", "test_subscriber.2"} {
		addressCh := make(chan any, 5)

		err := engine.Subscribe(
			testEventName,
			&event.Subscriber{
				Name:      name,
				AddressCh: addressCh,
			},
		)
		if err != nil {
			close(addressCh)
			t.Fatal(err)
		}

		internalSrvWG.Add(1)
		go func(name event.SubscriberName) {
			defer internalSrvWG.Done()

			for payload := range addressCh {
				mu.Lock()
				received[name] = append(received[name], payload)
				mu.Unlock()
			}
		}(name)
	}

	for i := 0; i < 5; i++ {
		err := engine.Publish(
			&event.Event{
				Name:    testEventName,
				Payload: i,
			},
		)
		if err != nil {
			t.Fatal(err)
		}
	}

	if err := engine.Publish(&event.Event{Name: "unregistered.event"}); err == nil {
		t.Error("expected publishing an unregistered event to fail")
	}

	close(doneCh)
	internalSrvWG.Wait()

	for name, payloads := range received {
		if len(payloads) != 5 {
			t.Errorf(
				"subscriber %q received %d payloads, want 5",
				name,
				len(payloads),
			)
		}
	}
}

func Test_eventEngine_subscribeToUnknownEvent(t *testing.T) {
	doneCh := make(chan struct{})
	internalSrvWG := sync.WaitGroup{}

	engine := &eventEngine{
		EventEngineConfig: &EventEngineConfig{
			DoneCh:        doneCh,
			InternalSrvWG: &internalSrvWG,
		},
		events:        make(map[event.EventName]*subscribers),
		eventEngineCh: make(chan *event.Event, 1),
	}

	addressCh := make(chan any, 1)
	defer close(addressCh)

	err := engine.Subscribe(
		"never.registered",
		&event.Subscriber{
			Name:      "test_subscriber",
			AddressCh: addressCh,
		},
	)
	if err == nil {
		t.Error("expected subscribing to an unregistered event to fail")
	}
}
