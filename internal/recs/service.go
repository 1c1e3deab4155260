package recs

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/priyanshi012/studio/internal/catalog"
	"github.com/priyanshi012/studio/internal/domain"
)

// DisplayCount is how many recommendations the storefront shows.
const DisplayCount = 4

// Result distinguishes the ways a recommendation fetch can come back
// empty: no candidates at all, a failed oracle call (Degraded), or a
// response that lost the race against a newer fetch for the same
// session (Stale).
type Result struct {
	Products []domain.Product
	Degraded bool
	Stale    bool
}

// Service orchestrates a recommendation fetch: it assembles the catalog
// and browsing history into an oracle request, resolves the returned IDs
// back into products, and degrades to an empty result on any oracle
// failure. Oracle errors never propagate to the caller.
type Service struct {
	catalog catalog.Store
	oracle  Oracle
	breaker *gobreaker.CircuitBreaker[Response]
	sfg     singleflight.Group // collapses concurrent fetches for the same history

	mu          sync.Mutex
	generations map[string]uint64 // sessionID -> latest fetch generation
}

func NewService(catalogStore catalog.Store, oracle Oracle) *Service {
	breaker := gobreaker.NewCircuitBreaker[Response](gobreaker.Settings{
		Name: "recommendation-oracle",
	})
	return &Service{
		catalog:     catalogStore,
		oracle:      oracle,
		breaker:     breaker,
		generations: make(map[string]uint64),
	}
}

// Recommend returns ranked products for the session's browsing history.
// An empty history yields an empty result without calling the oracle.
func (s *Service) Recommend(ctx context.Context, sessionID string, browsingHistory []string) Result {
	if len(browsingHistory) == 0 {
		return Result{Products: []domain.Product{}}
	}

	generation := s.nextGeneration(sessionID)

	products, err := s.fetch(ctx, browsingHistory)
	if err != nil {
		log.Printf("recommendation fetch degraded: %v", err)
		return Result{Products: []domain.Product{}, Degraded: true, Stale: s.isStale(sessionID, generation)}
	}

	return Result{Products: products, Stale: s.isStale(sessionID, generation)}
}

func (s *Service) fetch(ctx context.Context, browsingHistory []string) ([]domain.Product, error) {
	key := strings.Join(browsingHistory, ",")
	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		all, err := s.catalog.List(ctx, catalog.Filter{})
		if err != nil {
			return nil, err
		}

		req := Request{
			BrowsingHistory: browsingHistory,
			Catalog:         make([]CatalogEntry, len(all)),
		}
		for i, p := range all {
			req.Catalog[i] = CatalogEntry{ProductID: p.ID, Description: p.Description}
		}

		resp, err := s.breaker.Execute(func() (Response, error) {
			return s.oracle.Recommend(ctx, req)
		})
		if err != nil {
			return nil, err
		}

		return s.resolve(ctx, resp.ProductIDs), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// resolve looks up every returned ID concurrently and keeps the oracle's
// order. IDs the catalog does not know are dropped silently; the oracle
// is untrusted and stale or hallucinated IDs are expected.
func (s *Service) resolve(ctx context.Context, ids []string) []domain.Product {
	resolved := make([]*domain.Product, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			p, err := s.catalog.Get(ctx, id)
			if err != nil {
				if !errors.Is(err, catalog.ErrProductNotFound) {
					log.Printf("failed to resolve recommended product %s: %v", id, err)
				}
				return nil
			}
			resolved[i] = &p
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures are filtered

	products := make([]domain.Product, 0, len(ids))
	for _, p := range resolved {
		if p != nil {
			products = append(products, *p)
		}
	}
	return products
}

func (s *Service) nextGeneration(sessionID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[sessionID]++
	return s.generations[sessionID]
}

// isStale reports whether a newer fetch started for the session after
// the given generation. Stale results should not overwrite displayed
// state.
func (s *Service) isStale(sessionID string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[sessionID] != generation
}
