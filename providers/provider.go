package providers

import (
	"context"

	"storefront/models"
)

// CatalogFeed defines the interface for the remote product catalog source.
type CatalogFeed interface {
	// Fetch downloads and parses the feed into product records.
	Fetch(ctx context.Context) ([]models.Product, error)
}

// OrderSubmitter defines the interface for the remote order endpoint.
type OrderSubmitter interface {
	// Submit posts one order. A nil error means the endpoint accepted the
	// request at the transport level; it does not confirm processing.
	Submit(ctx context.Context, sub models.OrderSubmission) error
}
