package repository

import (
	"context"

	"storefront/models"
)

// CartRepository defines storage for session carts. Implementations return
// (nil, nil) when no cart exists for the session.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
