package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/priyanshi012/studio/internal/domain"
	"github.com/priyanshi012/studio/internal/session"
)

// Service owns the cart for each session: an insertion-ordered list of
// (productId, quantity) pairs with unique product IDs. Every mutation
// persists the full resulting list and notifies the session.
//
// Persistence writes are best-effort: a failed write is logged and the
// freshly computed list is still returned, so the caller sees the state
// the mutation produced.
type Service struct {
	store    session.Store
	notifier Notifier
}

func NewService(store session.Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// Items returns the session's cart. A missing or malformed stored value
// yields an empty cart, never an error.
func (s *Service) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	data, err := s.store.Get(ctx, sessionID, session.KeyCart)
	if err != nil {
		if errors.Is(err, session.ErrKeyNotFound) {
			return []domain.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt stored cart, discard it and start over
		log.Printf("discarding malformed cart for session %s: %v", sessionID, err)
		s.persist(ctx, sessionID, []domain.CartItem{})
		return []domain.CartItem{}, nil
	}
	return items, nil
}

// Add increments the quantity of an existing item or appends a new one.
// Stock is deliberately not checked; the demo storefront never did.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) ([]domain.CartItem, error) {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	s.persist(ctx, sessionID, items)
	s.notifier.Notify(sessionID, "Added to cart!", "The item has been successfully added to your cart.")
	return items, nil
}

// Remove drops the matching item. Removing an absent product is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) ([]domain.CartItem, error) {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := items[:0]
	removed := false
	for _, item := range items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		result = append(result, item)
	}

	if removed {
		s.persist(ctx, sessionID, result)
		s.notifier.Notify(sessionID, "Item removed", "The item has been removed from your cart.")
	}
	return result, nil
}

// UpdateQuantity sets the item's quantity to exactly the given value.
// A quantity of zero or less removes the item instead.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) ([]domain.CartItem, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	s.persist(ctx, sessionID, items)
	return items, nil
}

// Clear replaces the cart with an empty list and persists it.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	s.persist(ctx, sessionID, []domain.CartItem{})
	return nil
}

func (s *Service) persist(ctx context.Context, sessionID string, items []domain.CartItem) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("failed to marshal cart for session %s: %v", sessionID, err)
		return
	}
	if err := s.store.Set(ctx, sessionID, session.KeyCart, data); err != nil {
		log.Printf("failed to persist cart for session %s: %v", sessionID, err)
	}
}
