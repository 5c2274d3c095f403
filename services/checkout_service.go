package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"storefront/models"
	"storefront/providers"
	"storefront/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutEventPublisher publishes checkout events to the message bus.
// Satisfied by *kafka.Producer; nil disables publishing.
type CheckoutEventPublisher interface {
	SendCheckoutEvent(ctx context.Context, event models.CheckoutEvent) error
}

// CheckoutService orchestrates a checkout: bundle the cart snapshot, the
// contact form and the encoded receipt, submit to the order endpoint,
// archive the order and clear the cart. Any failure before the submission
// succeeds leaves the cart untouched so the buyer can retry; there is no
// automatic retry.
type CheckoutService interface {
	Submit(ctx context.Context, sessionID string, form models.ContactForm, receipt *multipart.FileHeader) (*models.Order, *ServiceError)
}

type checkoutServiceImpl struct {
	carts     CartService
	orders    repository.OrderRepository
	submitter providers.OrderSubmitter
	publisher CheckoutEventPublisher
	logger    *zap.Logger
}

// NewCheckoutService creates a new CheckoutService. publisher may be nil.
func NewCheckoutService(
	carts CartService,
	orders repository.OrderRepository,
	submitter providers.OrderSubmitter,
	publisher CheckoutEventPublisher,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		carts:     carts,
		orders:    orders,
		submitter: submitter,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *checkoutServiceImpl) Submit(ctx context.Context, sessionID string, form models.ContactForm, receipt *multipart.FileHeader) (*models.Order, *ServiceError) {
	cart, svcErr := s.carts.Get(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	if len(cart.Items) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "cart is empty"}
	}

	receiptDataURL, err := encodeReceipt(receipt)
	if err != nil {
		s.logger.Error("Failed to encode receipt", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to read receipt image"}
	}

	cartJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "failed to serialize cart"}
	}

	sub := models.OrderSubmission{
		Name:     form.Name,
		Address:  form.Address,
		Phone:    form.Phone,
		Email:    form.Email,
		Note:     form.Note,
		CartJSON: string(cartJSON),
		Receipt:  receiptDataURL,
	}

	if err := s.submitter.Submit(ctx, sub); err != nil {
		s.logger.Error("Order submission failed", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusBadGateway, Message: "order submission failed"}
	}

	order := &models.Order{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Name:        form.Name,
		Address:     form.Address,
		Phone:       form.Phone,
		Email:       form.Email,
		Note:        form.Note,
		ItemsJSON:   string(cartJSON),
		Total:       cart.Total(),
		ReceiptName: receipt.Filename,
		ReceiptSize: receipt.Size,
		Status:      models.OrderStatusSubmitted,
	}

	// The endpoint accepted the order; archive and fan-out failures are
	// logged but no longer fail the checkout.
	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to archive order", zap.String("order_id", order.ID.String()), zap.Error(err))
	}

	if s.publisher != nil {
		event := models.CheckoutEvent{
			Event:     "checkout.submitted",
			OrderID:   order.ID.String(),
			SessionID: sessionID,
			Email:     form.Email,
			Total:     order.Total,
			Items:     cart.Items,
			Timestamp: time.Now(),
		}
		if err := s.publisher.SendCheckoutEvent(ctx, event); err != nil {
			s.logger.Warn("Failed to publish checkout event", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	if svcErr := s.carts.Clear(ctx, sessionID); svcErr != nil {
		s.logger.Warn("Failed to clear cart after checkout", zap.String("session_id", sessionID))
	}

	return order, nil
}

// encodeReceipt reads the uploaded image and returns it as a base64 data
// URL, the format the order endpoint stores.
func encodeReceipt(receipt *multipart.FileHeader) (string, error) {
	file, err := receipt.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	contentType := receipt.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)), nil
}
