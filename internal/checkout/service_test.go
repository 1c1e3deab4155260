package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyanshi012/studio/internal/domain"
)

type decliningCharger struct {
	err error
}

func (c decliningCharger) Charge(context.Context, ChargeRequest) error {
	return c.err
}

var testAddress = domain.ShippingAddress{
	Name:    "John Doe",
	Address: "1 Main St",
	City:    "Springfield",
	Zip:     "12345",
}

func testInput() Input {
	return Input{
		User: domain.User{ID: "mock-user-id-1", Email: "a@b.com"},
		Items: []domain.OrderItem{
			{ProductID: "prod_001", Name: "Quantum-Core Laptop", Quantity: 1, Price: 1499.99},
			{ProductID: "prod_002", Name: "SonicStream Wireless Headphones", Quantity: 2, Price: 249.99},
		},
		ShippingAddress: testAddress,
	}
}

func TestTotal_SumsPriceTimesQuantity(t *testing.T) {
	assert.Equal(t, 1499.99+2*249.99, Total(testInput().Items))
	assert.Equal(t, 0.0, Total(nil))
}

func TestPlaceOrder_BuildsPendingOrder(t *testing.T) {
	svc := NewServiceWithDelay(AlwaysApprove{}, 0)
	in := testInput()
	before := time.Now()

	order, err := svc.PlaceOrder(context.Background(), in)

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "mock-user-id-1", order.UserID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, in.Items, order.Items)
	assert.Equal(t, testAddress, order.ShippingAddress)
	assert.False(t, order.CreatedAt.Before(before))
}

func TestPlaceOrder_TotalMatchesItemSubtotals(t *testing.T) {
	svc := NewServiceWithDelay(AlwaysApprove{}, 0)
	in := testInput()

	order, err := svc.PlaceOrder(context.Background(), in)

	require.NoError(t, err)
	// 1499.99 + 2*249.99 = 1999.97, bit-for-bit with the displayed subtotal
	assert.Equal(t, Total(in.Items), order.Total)
	assert.InDelta(t, 1999.97, order.Total, 1e-9)
}

func TestPlaceOrder_EmptyCartRejected(t *testing.T) {
	svc := NewServiceWithDelay(AlwaysApprove{}, 0)
	in := testInput()
	in.Items = nil

	_, err := svc.PlaceOrder(context.Background(), in)

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_IncompleteAddressRejected(t *testing.T) {
	svc := NewServiceWithDelay(AlwaysApprove{}, 0)
	in := testInput()
	in.ShippingAddress.Zip = ""

	_, err := svc.PlaceOrder(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestPlaceOrder_DeclineSurfacesReason(t *testing.T) {
	decline := &DeclineError{Reason: ReasonPaymentDeclined, Message: "card refused"}
	svc := NewServiceWithDelay(decliningCharger{err: decline}, 0)

	_, err := svc.PlaceOrder(context.Background(), testInput())

	require.Error(t, err)
	var declineErr *DeclineError
	require.ErrorAs(t, err, &declineErr)
	assert.Equal(t, ReasonPaymentDeclined, declineErr.Reason)
}

func TestPlaceOrder_DistinctOrderIDs(t *testing.T) {
	svc := NewServiceWithDelay(AlwaysApprove{}, 0)
	ctx := context.Background()

	first, err := svc.PlaceOrder(ctx, testInput())
	require.NoError(t, err)
	second, err := svc.PlaceOrder(ctx, testInput())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
