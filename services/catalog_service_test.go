package services_test

import (
	"context"
	"errors"
	"testing"

	"storefront/models"
	"storefront/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// ---- fake feed ----

type fakeFeed struct {
	products []models.Product
	err      error
}

func (f *fakeFeed) Fetch(_ context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "p1", Name: "Silk Square", Price: 49.9, Category: "Premium"},
		{ID: "p2", Name: "Plain Cotton", Price: 19.5, Category: "Basic"},
		{ID: "p3", Name: "Cotton Wrap", Price: 29.0, Category: "Basic"},
	}
}

func newCatalog(t *testing.T, feed *fakeFeed) services.CatalogService {
	t.Helper()
	catalog := services.NewCatalogService(feed, zap.NewNop())
	if feed.err == nil {
		count, svcErr := catalog.Refresh(context.Background())
		assert.Nil(t, svcErr)
		assert.Equal(t, len(feed.products), count)
	}
	return catalog
}

func TestRefreshFailureKeepsPreviousSnapshot(t *testing.T) {
	feed := &fakeFeed{products: sampleProducts()}
	catalog := newCatalog(t, feed)

	feed.err = errors.New("feed down")
	_, svcErr := catalog.Refresh(context.Background())
	assert.NotNil(t, svcErr)
	assert.Equal(t, 502, svcErr.StatusCode)

	// The earlier snapshot is still served.
	assert.Len(t, catalog.List(services.ListProductsParams{}), 3)
}

func TestRefreshFailureOnFirstLoadLeavesCatalogEmpty(t *testing.T) {
	catalog := services.NewCatalogService(&fakeFeed{err: errors.New("feed down")}, zap.NewNop())

	_, svcErr := catalog.Refresh(context.Background())
	assert.NotNil(t, svcErr)
	assert.Empty(t, catalog.List(services.ListProductsParams{}))
}

func TestListFiltersCompose(t *testing.T) {
	catalog := newCatalog(t, &fakeFeed{products: sampleProducts()})

	// Category match is case-insensitive and exact.
	byCategory := catalog.List(services.ListProductsParams{Category: "basic"})
	assert.Len(t, byCategory, 2)

	// Search is a case-insensitive substring match on the name.
	bySearch := catalog.List(services.ListProductsParams{Search: "cotton"})
	assert.Len(t, bySearch, 2)

	// Both predicates AND together.
	both := catalog.List(services.ListProductsParams{Category: "Basic", Search: "wrap"})
	assert.Len(t, both, 1)
	assert.Equal(t, "p3", both[0].ID)

	// No match on partial category.
	assert.Empty(t, catalog.List(services.ListProductsParams{Category: "Bas"}))
}

func TestListSortsByPrice(t *testing.T) {
	catalog := newCatalog(t, &fakeFeed{products: sampleProducts()})

	asc := catalog.List(services.ListProductsParams{Sort: services.SortPriceAsc})
	assert.Equal(t, []string{"p2", "p3", "p1"}, ids(asc))

	desc := catalog.List(services.ListProductsParams{Sort: services.SortPriceDesc})
	assert.Equal(t, []string{"p1", "p3", "p2"}, ids(desc))

	// Unsorted keeps feed order.
	unsorted := catalog.List(services.ListProductsParams{Sort: services.SortNone})
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(unsorted))
}

func TestListReturnsACopy(t *testing.T) {
	catalog := newCatalog(t, &fakeFeed{products: sampleProducts()})

	view := catalog.List(services.ListProductsParams{})
	view[0].Name = "mutated"

	fresh := catalog.List(services.ListProductsParams{})
	assert.Equal(t, "Silk Square", fresh[0].Name)
}

func TestGetAndCategories(t *testing.T) {
	catalog := newCatalog(t, &fakeFeed{products: sampleProducts()})

	p, ok := catalog.Get("p2")
	assert.True(t, ok)
	assert.Equal(t, "Plain Cotton", p.Name)

	_, ok = catalog.Get("missing")
	assert.False(t, ok)

	// Distinct categories in order of first appearance.
	assert.Equal(t, []string{"Premium", "Basic"}, catalog.Categories())
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}
