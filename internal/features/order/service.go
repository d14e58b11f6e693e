package order

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine/event"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/cart"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/shopspring/decimal"
)

type Storer interface {
	createOne(ctx context.Context, newOrder *Order) error
	findAll(ctx context.Context, status OrderStatus) ([]*Order, error)
	findByID(ctx context.Context, orderID uuid.UUID) (*Order, error)
	updateStatus(ctx context.Context, orderID uuid.UUID, status OrderStatus) error
}

type carter interface {
	Items(sessionID uuid.UUID) []cart.CartItem
	Clear(sessionID uuid.UUID)
}

type customerUpserter interface {
	UpsertCustomer(ctx context.Context, email, name, phone string) (uuid.UUID, error)
}

type service struct {
	store       Storer
	carts       carter
	users       customerUpserter
	eventEngine eventengine.RegisterPublisher
}

func NewService(
	store Storer,
	carts carter,
	users customerUpserter,
	eventEngine eventengine.RegisterPublisher,
) *service {
	// events this service emits for other features to subscribe to
	eventEngine.RegisterEvents(
		event.OrderPlacedEventName,
	)

	return &service{
		store:       store,
		carts:       carts,
		users:       users,
		eventEngine: eventEngine,
	}
}

// checkout turns the session's cart into a persisted order. The cart is
// cleared only after the order row is committed, so a failed checkout
// leaves the cart exactly as the shopper had it.
func (s *service) checkout(ctx context.Context, sessionID uuid.UUID, req *CheckoutRequest) (*CheckoutResponse, error) {
	items := s.carts.Items(sessionID)
	if len(items) == 0 {
		return nil, servererrors.ErrEmptyCart
	}

	name := strings.TrimSpace(
		fmt.Sprintf("%s %s", req.FirstName, req.LastName),
	)

	userID, err := s.users.UpsertCustomer(
		ctx,
		strings.TrimSpace(req.Email),
		name,
		strings.TrimSpace(req.Phone),
	)
	if err != nil {
		return nil, err
	}

	newOrder := &Order{
		OrderID:     uuid.New(),
		OrderNumber: newOrderNumber(),
		UserID:      userID,
		Status:      StatusPending,
		ShippingAddress: fmt.Sprintf(
			"%s, %s %s",
			strings.TrimSpace(req.Address),
			strings.TrimSpace(req.City),
			strings.TrimSpace(req.ZipCode),
		),
		Phone: strings.TrimSpace(req.Phone),
		Notes: strings.TrimSpace(req.Notes),
	}

	total := decimal.Zero
	eventLines := make([]event.OrderLine, 0, len(items))

	for _, item := range items {
		newOrder.Items = append(newOrder.Items, OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name.EN,
			Price:       item.Product.Price,
			Quantity:    item.Quantity,
		})

		total = total.Add(
			decimal.NewFromFloat(item.Product.Price).
				Mul(decimal.NewFromInt(int64(item.Quantity))),
		)

		eventLines = append(eventLines, event.OrderLine{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	newOrder.TotalAmount, _ = total.Float64()

	if err := s.store.createOne(ctx, newOrder); err != nil {
		return nil, err
	}

	placedEvent := &event.OrderPlacedEvent{
		OrderID: newOrder.OrderID,
		Lines:   eventLines,
	}

	err = s.eventEngine.Publish(
		&event.Event{
			Name:    placedEvent.GetEventName(),
			Payload: placedEvent,
		},
	)
	if err != nil {
		// stock adjustment is best effort, the committed order wins
		log.Printf(
			"failed to publish order placed event for order %s: %v\n",
			newOrder.OrderID,
			err,
		)
	}

	s.carts.Clear(sessionID)

	return &CheckoutResponse{
		OrderID:     newOrder.OrderID,
		OrderNumber: newOrder.OrderNumber,
		TotalAmount: newOrder.TotalAmount,
	}, nil
}

func (s *service) listOrders(ctx context.Context, statusFilter string) ([]*Order, error) {
	if statusFilter == "" || statusFilter == "all" {
		return s.store.findAll(ctx, "")
	}

	status, err := ParseStatus(statusFilter)
	if err != nil {
		return nil, err
	}

	return s.store.findAll(ctx, status)
}

// updateStatus applies a guarded transition and returns the updated
// record. The stored row is written before the returned copy is mutated,
// so a failed write leaves callers seeing the previous status.
func (s *service) updateStatus(ctx context.Context, req *UpdateStatusRequest) (*Order, error) {
	nextStatus, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	current, err := s.store.findByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(nextStatus) {
		return nil, servererrors.ErrInvalidTransition
	}

	if err := s.store.updateStatus(ctx, req.OrderID, nextStatus); err != nil {
		return nil, err
	}

	current.Status = nextStatus

	return current, nil
}

func newOrderNumber() string {
	suffix := strings.ToUpper(
		strings.SplitN(uuid.NewString(), "-", 2)[0],
	)

	return fmt.Sprintf(
		"PG-%s-%s",
		time.Now().Format("20060102"),
		suffix,
	)
}
