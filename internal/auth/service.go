// Package auth is a mocked account layer: login and signup always
// succeed after a simulated network delay, and no credential is ever
// verified. It must not be mistaken for real authentication.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/priyanshi012/studio/internal/domain"
	"github.com/priyanshi012/studio/internal/session"
)

const defaultDelay = time.Second

type Service struct {
	store session.Store
	delay time.Duration
}

func NewService(store session.Store) *Service {
	return &Service{
		store: store,
		delay: defaultDelay,
	}
}

// NewServiceWithDelay overrides the simulated latency, mainly for tests.
func NewServiceWithDelay(store session.Store, delay time.Duration) *Service {
	return &Service{
		store: store,
		delay: delay,
	}
}

// Login fabricates a user for the given email. The password is accepted
// unconditionally.
func (s *Service) Login(ctx context.Context, sessionID, email, _ string) (domain.User, error) {
	return s.establish(ctx, sessionID, email, "John Doe")
}

// Signup behaves exactly like Login, seeded with the supplied name.
func (s *Service) Signup(ctx context.Context, sessionID, email, _, name string) (domain.User, error) {
	return s.establish(ctx, sessionID, email, name)
}

func (s *Service) establish(ctx context.Context, sessionID, email, name string) (domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:    "mock-user-id-" + uuid.New().String(),
		Email: email,
		Name:  name,
	}

	data, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.store.Set(ctx, sessionID, session.KeyUser, data); err != nil {
		return domain.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	return user, nil
}

// Logout clears the current user. Logging out an anonymous session is a
// no-op.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID, session.KeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser hydrates the persisted user, if any. Malformed persisted
// state is discarded and treated as "no session".
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (domain.User, bool, error) {
	data, err := s.store.Get(ctx, sessionID, session.KeyUser)
	if err != nil {
		if errors.Is(err, session.ErrKeyNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, fmt.Errorf("failed to load session: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("discarding malformed session for %s: %v", sessionID, err)
		if err := s.store.Delete(ctx, sessionID, session.KeyUser); err != nil {
			log.Printf("failed to clear malformed session for %s: %v", sessionID, err)
		}
		return domain.User{}, false, nil
	}

	return user, true, nil
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
