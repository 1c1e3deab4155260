package recs

import "context"

// CatalogEntry is the slice of a product the ranking oracle sees.
type CatalogEntry struct {
	ProductID   string `json:"productId"`
	Description string `json:"description"`
}

// Request pairs the full catalog with the caller's browsing history.
type Request struct {
	BrowsingHistory []string       `json:"browsingHistory"`
	Catalog         []CatalogEntry `json:"catalog"`
}

// Response carries the oracle's ranked product IDs. The list may be
// empty, and the IDs are untrusted: nothing guarantees they exist in
// the catalog.
type Response struct {
	ProductIDs []string `json:"productIds"`
}

// Oracle ranks catalog products against a browsing history. It is an
// opaque external service; callers must survive any failure mode.
type Oracle interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}
