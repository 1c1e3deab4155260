// Package orders keeps the session's placed orders. There is no durable
// order backend: the checkout flow returns a constructed order and the
// caller appends it here, mirroring the client-owned persistence split.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/priyanshi012/studio/internal/domain"
	"github.com/priyanshi012/studio/internal/session"
)

type Store struct {
	store session.Store
}

func NewStore(store session.Store) *Store {
	return &Store{store: store}
}

// Append adds an order to the session's list. The list is append-only.
func (s *Store) Append(ctx context.Context, sessionID string, order domain.Order) error {
	list, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	list = append(list, order)
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	if err := s.store.Set(ctx, sessionID, session.KeyOrders, data); err != nil {
		return fmt.Errorf("failed to persist orders: %w", err)
	}
	return nil
}

// ListByUser returns the session's orders for the given user, in the
// order they were placed.
func (s *Store) ListByUser(ctx context.Context, sessionID, userID string) ([]domain.Order, error) {
	list, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Order, 0, len(list))
	for _, order := range list {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (s *Store) load(ctx context.Context, sessionID string) ([]domain.Order, error) {
	data, err := s.store.Get(ctx, sessionID, session.KeyOrders)
	if err != nil {
		if errors.Is(err, session.ErrKeyNotFound) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var list []domain.Order
	if err := json.Unmarshal(data, &list); err != nil {
		log.Printf("discarding malformed order list for session %s: %v", sessionID, err)
		return []domain.Order{}, nil
	}
	return list, nil
}
