package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshi012/studio/internal/cart"
	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/checkout"
	"github.com/priyanshi012/studio/internal/domain"
	"github.com/priyanshi012/studio/internal/events"
	"github.com/priyanshi012/studio/internal/orders"
	"github.com/priyanshi012/studio/internal/session"
)

type recordingPublisher struct {
	m      sync.Mutex
	events []events.OrderPlacedEvent
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, e events.OrderPlacedEvent) error {
	p.m.Lock()
	defer p.m.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type checkoutFixture struct {
	handler   *CheckoutHandler
	cart      *cart.Service
	orders    *orders.Store
	sessions  *session.MemoryStore
	publisher *recordingPublisher
}

func newCheckoutFixture() *checkoutFixture {
	sessions := session.NewMemoryStore()
	cartService := cart.NewService(sessions, silentNotifier{})
	orderStore := orders.NewStore(sessions)
	publisher := &recordingPublisher{}
	handler := NewCheckoutHandler(
		checkout.NewServiceWithDelay(checkout.AlwaysApprove{}, 0),
		cartService,
		catalog.NewMemoryStore(),
		orderStore,
		publisher,
	)
	return &checkoutFixture{
		handler:   handler,
		cart:      cartService,
		orders:    orderStore,
		sessions:  sessions,
		publisher: publisher,
	}
}

var checkoutUser = domain.User{ID: "mock-user-id-1", Email: "a@b.com", Name: "John Doe"}

func checkoutRequest(t *testing.T, sessionID string, user domain.User) *http.Request {
	t.Helper()
	body, err := json.Marshal(CheckoutRequestDTO{
		ShippingAddress: domain.ShippingAddress{
			Name:    "John Doe",
			Address: "1 Main St",
			City:    "Springfield",
			Zip:     "12345",
		},
	})
	require.NoError(t, err)

	request := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	ctx := context.WithValue(request.Context(), sessionIDKey, sessionID)
	ctx = context.WithValue(ctx, userKey, user)
	return request.WithContext(ctx)
}

func TestPlaceOrder_FullFlow(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "s1", "prod_001", 1)
	require.NoError(t, err)
	_, err = f.cart.Add(ctx, "s1", "prod_002", 2)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	f.handler.PlaceOrder(recorder, checkoutRequest(t, "s1", checkoutUser))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var resp CheckoutResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, domain.OrderStatusPending, resp.Order.Status)

	// 1499.99 + 2*249.99
	assert.InDelta(t, 1999.97, resp.Order.Total, 1e-9)

	// Item snapshots carry catalog name and price at purchase time
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "Quantum-Core Laptop", resp.Order.Items[0].Name)
	assert.Equal(t, 1499.99, resp.Order.Items[0].Price)

	// The handler persisted the order and cleared the cart
	list, err := f.orders.ListByUser(ctx, "s1", checkoutUser.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.Order.ID, list[0].ID)

	items, err := f.cart.Items(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)

	// And published the event
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, resp.Order.ID, f.publisher.events[0].OrderID)
}

func TestPlaceOrder_EmptyCartRejected(t *testing.T) {
	f := newCheckoutFixture()

	recorder := httptest.NewRecorder()
	f.handler.PlaceOrder(recorder, checkoutRequest(t, "s1", checkoutUser))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "empty_cart", resp.Code)
}

func TestPlaceOrder_IncompleteAddressRejected(t *testing.T) {
	f := newCheckoutFixture()
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "s1", "prod_005", 1)
	require.NoError(t, err)

	body, _ := json.Marshal(CheckoutRequestDTO{
		ShippingAddress: domain.ShippingAddress{Name: "John Doe"},
	})
	request := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	reqCtx := context.WithValue(request.Context(), sessionIDKey, "s1")
	reqCtx = context.WithValue(reqCtx, userKey, checkoutUser)
	recorder := httptest.NewRecorder()

	f.handler.PlaceOrder(recorder, request.WithContext(reqCtx))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPlaceOrder_DeclineMapsToPaymentRequired(t *testing.T) {
	f := newCheckoutFixture()
	f.handler.service = checkout.NewServiceWithDelay(decliningCharger{}, 0)
	ctx := context.Background()

	_, err := f.cart.Add(ctx, "s1", "prod_005", 1)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	f.handler.PlaceOrder(recorder, checkoutRequest(t, "s1", checkoutUser))

	assert.Equal(t, http.StatusPaymentRequired, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, string(checkout.ReasonPaymentDeclined), resp.Code)

	// A declined order is never persisted
	list, err := f.orders.ListByUser(ctx, "s1", checkoutUser.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

type decliningCharger struct{}

func (decliningCharger) Charge(context.Context, checkout.ChargeRequest) error {
	return &checkout.DeclineError{Reason: checkout.ReasonPaymentDeclined, Message: "card refused"}
}
