package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_NoFilterReturnsEverything(t *testing.T) {
	store := NewMemoryStore()

	products, err := store.List(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Len(t, products, 8)
}

func TestList_FilterByCategorySlug(t *testing.T) {
	store := NewMemoryStore()

	products, err := store.List(context.Background(), Filter{Category: "fashion"})

	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "fashion", p.Category)
	}
}

func TestList_QueryMatchesNameAndDescription(t *testing.T) {
	store := NewMemoryStore()

	byName, err := store.List(context.Background(), Filter{Query: "laptop"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "prod_001", byName[0].ID)

	// "waterproof" only appears in descriptions
	byDescription, err := store.List(context.Background(), Filter{Query: "WATERPROOF"})
	require.NoError(t, err)
	assert.Len(t, byDescription, 2)
}

func TestList_CategoryAndQueryCombine(t *testing.T) {
	store := NewMemoryStore()

	products, err := store.List(context.Background(), Filter{Category: "electronics", Query: "waterproof"})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGet_UnknownIDReturnsNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "prod_999")

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGet_ReturnsFullProduct(t *testing.T) {
	store := NewMemoryStore()

	p, err := store.Get(context.Background(), "prod_001")

	require.NoError(t, err)
	assert.Equal(t, "Quantum-Core Laptop", p.Name)
	assert.Equal(t, 1499.99, p.Price)
	assert.Len(t, p.Reviews, 2)
}

func TestCategories_ReturnsSeededCategories(t *testing.T) {
	store := NewMemoryStore()

	categories, err := store.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "electronics", categories[0].Slug)
}

func TestEmptyStore_ListAndGet(t *testing.T) {
	store := NewEmptyMemoryStore()

	products, err := store.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = store.Get(context.Background(), "prod_001")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
