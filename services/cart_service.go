package services

import (
	"context"
	"net/http"

	"storefront/models"
	"storefront/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// unspecifiedOption marks a color or size the buyer did not pick.
const unspecifiedOption = "-"

// AddItemParams describes one confirmed product selection.
type AddItemParams struct {
	ProductID string `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CartService owns all cart mutations. Line identity for merging is
// (product id, color, size); stock is advisory only and never enforced
// here.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, *ServiceError)
	AddItem(ctx context.Context, sessionID string, params AddItemParams) (*models.Cart, *ServiceError)
	SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*models.Cart, *ServiceError)
	RemoveItem(ctx context.Context, sessionID, lineID string) (*models.Cart, *ServiceError)
	Clear(ctx context.Context, sessionID string) *ServiceError
}

type cartServiceImpl struct {
	repo    repository.CartRepository
	catalog CatalogService
	logger  *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(repo repository.CartRepository, catalog CatalogService, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

func (s *cartServiceImpl) Get(ctx context.Context, sessionID string) (*models.Cart, *ServiceError) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load cart", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to load cart"}
	}
	if cart == nil {
		cart = &models.Cart{SessionID: sessionID, Items: []models.CartItem{}}
	}
	return cart, nil
}

func (s *cartServiceImpl) AddItem(ctx context.Context, sessionID string, params AddItemParams) (*models.Cart, *ServiceError) {
	if params.Quantity < 1 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "quantity must be at least 1"}
	}

	product, ok := s.catalog.Get(params.ProductID)
	if !ok {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "product not found"}
	}

	color := params.Color
	if color == "" {
		color = unspecifiedOption
	}
	size := params.Size
	if size == "" {
		size = unspecifiedOption
	}

	cart, svcErr := s.Get(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	merged := false
	for i := range cart.Items {
		line := &cart.Items[i]
		if line.ProductID == product.ID && line.Color == color && line.Size == size {
			line.Quantity += params.Quantity
			merged = true
			break
		}
	}

	if !merged {
		var image string
		if imgs := product.Images(); len(imgs) > 0 {
			image = imgs[0]
		}
		cart.Items = append(cart.Items, models.CartItem{
			ID:          uuid.NewString(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Image:       image,
			Color:       color,
			Size:        size,
			Quantity:    params.Quantity,
		})
	}

	return s.save(ctx, cart)
}

func (s *cartServiceImpl) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*models.Cart, *ServiceError) {
	cart, svcErr := s.Get(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	// Quantities below 1 are ignored, not clamped, and never remove the
	// line. Unknown line ids are also a no-op.
	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].ID == lineID {
			cart.Items[i].Quantity = quantity
			return s.save(ctx, cart)
		}
	}
	return cart, nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, sessionID, lineID string) (*models.Cart, *ServiceError) {
	cart, svcErr := s.Get(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}

	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ID != lineID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(cart.Items) {
		// Removing a non-existent line is a no-op.
		return cart, nil
	}
	cart.Items = kept

	return s.save(ctx, cart)
}

func (s *cartServiceImpl) Clear(ctx context.Context, sessionID string) *ServiceError {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		s.logger.Error("Failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to clear cart"}
	}
	return nil
}

func (s *cartServiceImpl) save(ctx context.Context, cart *models.Cart) (*models.Cart, *ServiceError) {
	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Error("Failed to save cart", zap.String("session_id", cart.SessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to save cart"}
	}
	return cart, nil
}
