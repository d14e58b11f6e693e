package order

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/catalog"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/eventengine/event"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/features/cart"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/i18n"
	"github.com/pawgarden/paw-garden-pet-shop-backend/internal/servererrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	orders    map[uuid.UUID]*Order
	failWrite bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		orders: make(map[uuid.UUID]*Order),
	}
}

func (f *fakeStore) createOne(_ context.Context, newOrder *Order) error {
	if f.failWrite {
		return errors.New("backend unavailable")
	}

	stored := *newOrder
	f.orders[newOrder.OrderID] = &stored

	return nil
}

func (f *fakeStore) findAll(_ context.Context, status OrderStatus) ([]*Order, error) {
	var orders []*Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			orders = append(orders, o)
		}
	}

	return orders, nil
}

func (f *fakeStore) findByID(_ context.Context, orderID uuid.UUID) (*Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, servererrors.ErrNotFound
	}

	found := *o

	return &found, nil
}

func (f *fakeStore) updateStatus(_ context.Context, orderID uuid.UUID, status OrderStatus) error {
	if f.failWrite {
		return errors.New("backend unavailable")
	}

	o, ok := f.orders[orderID]
	if !ok {
		return servererrors.ErrNotFound
	}

	o.Status = status

	return nil
}

type fakeCarts struct {
	items   []cart.CartItem
	cleared bool
}

func (f *fakeCarts) Items(uuid.UUID) []cart.CartItem {
	return f.items
}

func (f *fakeCarts) Clear(uuid.UUID) {
	f.cleared = true
}

type fakeUsers struct {
	userID uuid.UUID
}

func (f *fakeUsers) UpsertCustomer(context.Context, string, string, string) (uuid.UUID, error) {
	return f.userID, nil
}

type fakeEventEngine struct {
	published []*event.Event
}

func (f *fakeEventEngine) RegisterEvents(...event.EventName) {}

func (f *fakeEventEngine) Publish(e *event.Event) error {
	f.published = append(f.published, e)
	return nil
}

func checkoutRequest() *CheckoutRequest {
	return &CheckoutRequest{
		FirstName:     "Jamie",
		LastName:      "Chen",
		Email:         "jamie@example.com",
		Phone:         "555-0101",
		Address:       "1 Paw Lane",
		City:          "Springfield",
		ZipCode:       "12345",
		PaymentMethod: "credit",
	}
}

func cartItem(productID string, price float64, quantity int) cart.CartItem {
	return cart.CartItem{
		Product: catalog.Product{
			ID:    productID,
			Name:  i18n.Text{EN: "Product " + productID},
			Price: price,
			Stock: 10,
		},
		Quantity: quantity,
	}
}

func TestService_checkout(t *testing.T) {
	store := newFakeStore()
	carts := &fakeCarts{
		items: []cart.CartItem{
			cartItem("prod-a", 49.99, 2),
			cartItem("prod-b", 9.99, 1),
		},
	}
	engine := &fakeEventEngine{}

	svc := NewService(store, carts, &fakeUsers{userID: uuid.New()}, engine)

	receipt, err := svc.checkout(context.Background(), uuid.New(), checkoutRequest())
	require.NoError(t, err)

	assert.Equal(t, 109.97, receipt.TotalAmount)
	assert.NotEmpty(t, receipt.OrderNumber)
	assert.True(t, carts.cleared, "cart is cleared after a committed order")

	stored, ok := store.orders[receipt.OrderID]
	require.True(t, ok)
	assert.Equal(t, StatusPending, stored.Status)
	require.Len(t, stored.Items, 2)

	require.Len(t, engine.published, 1)
	placed, ok := engine.published[0].Payload.(*event.OrderPlacedEvent)
	require.True(t, ok)
	assert.Equal(t, receipt.OrderID, placed.OrderID)
	require.Len(t, placed.Lines, 2)
	assert.Equal(t, 2, placed.Lines[0].Quantity)
}

func TestService_checkout_emptyCart(t *testing.T) {
	carts := &fakeCarts{}
	svc := NewService(newFakeStore(), carts, &fakeUsers{userID: uuid.New()}, &fakeEventEngine{})

	_, err := svc.checkout(context.Background(), uuid.New(), checkoutRequest())

	assert.ErrorIs(t, err, servererrors.ErrEmptyCart)
	assert.False(t, carts.cleared)
}

func TestService_checkout_storeFailureKeepsCart(t *testing.T) {
	store := newFakeStore()
	store.failWrite = true
	carts := &fakeCarts{
		items: []cart.CartItem{cartItem("prod-a", 10, 1)},
	}
	engine := &fakeEventEngine{}

	svc := NewService(store, carts, &fakeUsers{userID: uuid.New()}, engine)

	_, err := svc.checkout(context.Background(), uuid.New(), checkoutRequest())

	require.Error(t, err)
	assert.False(t, carts.cleared, "a failed checkout leaves the cart intact")
	assert.Empty(t, engine.published)
}

func TestService_updateStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeCarts{}, &fakeUsers{}, &fakeEventEngine{})

	orderID := uuid.New()
	store.orders[orderID] = &Order{
		OrderID: orderID,
		Status:  StatusPending,
	}

	updated, err := svc.updateStatus(
		context.Background(),
		&UpdateStatusRequest{OrderID: orderID, Status: "confirmed"},
	)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, StatusConfirmed, store.orders[orderID].Status)
}

func TestService_updateStatus_rejectsInvalidTransition(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeCarts{}, &fakeUsers{}, &fakeEventEngine{})

	orderID := uuid.New()
	store.orders[orderID] = &Order{
		OrderID: orderID,
		Status:  StatusDelivered,
	}

	_, err := svc.updateStatus(
		context.Background(),
		&UpdateStatusRequest{OrderID: orderID, Status: "pending"},
	)

	assert.ErrorIs(t, err, servererrors.ErrInvalidTransition)
	assert.Equal(t, StatusDelivered, store.orders[orderID].Status, "stored status is unchanged")
}

func TestService_updateStatus_unknownStatus(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeCarts{}, &fakeUsers{}, &fakeEventEngine{})

	_, err := svc.updateStatus(
		context.Background(),
		&UpdateStatusRequest{OrderID: uuid.New(), Status: "teleported"},
	)

	assert.ErrorIs(t, err, servererrors.ErrUnknownStatus)
}

func TestService_updateStatus_notFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeCarts{}, &fakeUsers{}, &fakeEventEngine{})

	_, err := svc.updateStatus(
		context.Background(),
		&UpdateStatusRequest{OrderID: uuid.New(), Status: "confirmed"},
	)

	assert.ErrorIs(t, err, servererrors.ErrNotFound)
}

func TestService_listOrders_statusFilter(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeCarts{}, &fakeUsers{}, &fakeEventEngine{})

	pendingID, shippedID := uuid.New(), uuid.New()
	store.orders[pendingID] = &Order{OrderID: pendingID, Status: StatusPending}
	store.orders[shippedID] = &Order{OrderID: shippedID, Status: StatusShipped}

	orders, err := svc.listOrders(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, pendingID, orders[0].OrderID)

	orders, err = svc.listOrders(context.Background(), "all")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	_, err = svc.listOrders(context.Background(), "bogus")
	assert.ErrorIs(t, err, servererrors.ErrUnknownStatus)
}

func TestOrderStatus_transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusShipped))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusShipped.CanTransitionTo(StatusDelivered))

	assert.False(t, StatusShipped.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusDelivered.CanTransitionTo(StatusPending))
	assert.False(t, StatusCancelled.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusPending.CanTransitionTo(StatusDelivered))
}
