package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshi012/studio/internal/domain"
)

var (
	ErrEmptyCart      = errors.New("cart is empty, nothing to checkout")
	ErrInvalidAddress = errors.New("shipping address is incomplete")
)

const defaultDelay = 1500 * time.Millisecond

// Input is a snapshot of everything the flow needs: the current user,
// resolved cart line items with price-at-add, and the shipping address.
type Input struct {
	User            domain.User
	Items           []domain.OrderItem
	ShippingAddress domain.ShippingAddress
}

// Service places orders against a mock payment boundary. The order
// total is computed here and nowhere else; callers must display the
// value from the returned order rather than recomputing it.
//
// The service does NOT persist the returned order and does NOT clear
// the cart. Order persistence is client-owned; the caller appends the
// order to its own store and empties the cart afterwards.
type Service struct {
	charger Charger
	delay   time.Duration
}

func NewService(charger Charger) *Service {
	return &Service{
		charger: charger,
		delay:   defaultDelay,
	}
}

// NewServiceWithDelay overrides the simulated latency, mainly for tests.
func NewServiceWithDelay(charger Charger, delay time.Duration) *Service {
	return &Service{
		charger: charger,
		delay:   delay,
	}
}

// Total sums price times quantity over the line items. Exposed so the
// checkout UI shows the same number the order will carry.
func Total(items []domain.OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// PlaceOrder validates the input, charges the payment boundary, and
// returns a freshly constructed pending order.
func (s *Service) PlaceOrder(ctx context.Context, in Input) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}
	if in.ShippingAddress.Name == "" || in.ShippingAddress.Address == "" ||
		in.ShippingAddress.City == "" || in.ShippingAddress.Zip == "" {
		return domain.Order{}, ErrInvalidAddress
	}

	total := Total(in.Items)

	if err := s.charger.Charge(ctx, ChargeRequest{UserID: in.User.ID, Amount: total}); err != nil {
		return domain.Order{}, fmt.Errorf("charge failed: %w", err)
	}

	if err := s.simulateLatency(ctx); err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:              uuid.New().String(),
		UserID:          in.User.ID,
		Items:           in.Items,
		Total:           total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		CreatedAt:       time.Now(),
	}

	log.Printf("placed order %s for user %s, total %.2f", order.ID, order.UserID, order.Total)
	return order, nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
