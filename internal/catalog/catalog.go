package catalog

import (
	"context"
	"errors"

	"github.com/priyanshi012/studio/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Filter narrows a product listing. Category matches the category slug
// exactly; Query matches name or description, case-insensitively.
type Filter struct {
	Category string
	Query    string
}

// Store is the read-only product catalog.
// Consumers define this interface, not the storage implementation.
type Store interface {
	List(ctx context.Context, filter Filter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
