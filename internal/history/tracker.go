package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/priyanshi012/studio/internal/session"
)

// MaxLength bounds the browsing history per session.
const MaxLength = 20

// Tracker keeps a most-recently-viewed-first list of product IDs per
// session. Re-viewing a product moves its ID to the front rather than
// duplicating it.
type Tracker struct {
	store session.Store
}

func NewTracker(store session.Store) *Tracker {
	return &Tracker{store: store}
}

// History returns the session's browsing history, most recent first.
// A missing or malformed stored value yields an empty history.
func (t *Tracker) History(ctx context.Context, sessionID string) ([]string, error) {
	data, err := t.store.Get(ctx, sessionID, session.KeyHistory)
	if err != nil {
		if errors.Is(err, session.ErrKeyNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load browsing history: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("discarding malformed browsing history for session %s: %v", sessionID, err)
		if err := t.store.Delete(ctx, sessionID, session.KeyHistory); err != nil {
			log.Printf("failed to clear browsing history for session %s: %v", sessionID, err)
		}
		return []string{}, nil
	}
	return ids, nil
}

// Add prepends productID, removing any earlier occurrence and trimming
// the list to MaxLength. The stored history is loaded first, so a write
// can never clobber entries that were already persisted.
func (t *Tracker) Add(ctx context.Context, sessionID, productID string) error {
	ids, err := t.History(ctx, sessionID)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(ids)+1)
	updated = append(updated, productID)
	for _, id := range ids {
		if id != productID {
			updated = append(updated, id)
		}
	}
	if len(updated) > MaxLength {
		updated = updated[:MaxLength]
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to marshal browsing history: %w", err)
	}
	if err := t.store.Set(ctx, sessionID, session.KeyHistory, data); err != nil {
		return fmt.Errorf("failed to persist browsing history: %w", err)
	}
	return nil
}
