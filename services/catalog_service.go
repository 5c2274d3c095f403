package services

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"

	"storefront/models"
	"storefront/providers"

	"go.uber.org/zap"
)

// Sort values accepted by ListProductsParams.
const (
	SortNone      = "none"
	SortPriceAsc  = "asc"
	SortPriceDesc = "desc"
)

// ListProductsParams narrows and orders the catalog view. Filters compose
// with AND; empty fields are ignored.
type ListProductsParams struct {
	Search   string // case-insensitive substring match on product name
	Category string // case-insensitive exact match
	Sort     string // "", "none", "asc" or "desc" (by price)
}

// CatalogService owns the loaded product set and its derived views.
type CatalogService interface {
	// Refresh reloads the catalog from the feed. On failure the previous
	// snapshot is kept and an error is returned; the catalog never goes
	// backwards to empty once loaded.
	Refresh(ctx context.Context) (int, *ServiceError)

	// List returns a filtered, sorted copy of the catalog.
	List(params ListProductsParams) []models.Product

	// Get looks a product up by its stable id.
	Get(id string) (*models.Product, bool)

	// Categories returns the distinct categories in order of first
	// appearance.
	Categories() []string
}

type catalogServiceImpl struct {
	feed   providers.CatalogFeed
	logger *zap.Logger

	mu       sync.RWMutex
	products []models.Product
}

// NewCatalogService creates a CatalogService backed by the given feed. The
// catalog starts empty; call Refresh to load it.
func NewCatalogService(feed providers.CatalogFeed, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{
		feed:   feed,
		logger: logger,
	}
}

func (s *catalogServiceImpl) Refresh(ctx context.Context) (int, *ServiceError) {
	products, err := s.feed.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Catalog refresh failed, keeping previous snapshot", zap.Error(err))
		return 0, &ServiceError{StatusCode: http.StatusBadGateway, Message: "failed to load products"}
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	s.logger.Info("Catalog refreshed", zap.Int("products", len(products)))
	return len(products), nil
}

func (s *catalogServiceImpl) List(params ListProductsParams) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Product, 0, len(s.products))
	category := strings.ToLower(strings.TrimSpace(params.Category))
	search := strings.ToLower(strings.TrimSpace(params.Search))

	for _, p := range s.products {
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		result = append(result, p)
	}

	switch params.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

func (s *catalogServiceImpl) Get(id string) (*models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (s *catalogServiceImpl) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
