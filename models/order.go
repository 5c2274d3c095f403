package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status constants.
const (
	OrderStatusSubmitted = "submitted"
)

// ContactForm carries the checkout contact fields as entered by the buyer.
type ContactForm struct {
	Name    string `form:"name"`
	Address string `form:"address"`
	Phone   string `form:"phone"`
	Email   string `form:"email"`
	Note    string `form:"note"`
}

// OrderSubmission is the payload forwarded to the remote order endpoint:
// the contact fields, the JSON-serialized cart snapshot and the receipt
// image as a base64 data URL.
type OrderSubmission struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Note     string
	CartJSON string
	Receipt  string
}

// Order is the GORM model persisted in Postgres after a successful
// submission.
type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID   string    `gorm:"type:varchar(64);not null;index" json:"session_id"`
	Name        string    `gorm:"type:varchar(256);not null" json:"name"`
	Address     string    `gorm:"type:text;not null" json:"address"`
	Phone       string    `gorm:"type:varchar(32);not null" json:"phone"`
	Email       string    `gorm:"type:varchar(256);not null" json:"email"`
	Note        string    `gorm:"type:text" json:"note,omitempty"`
	ItemsJSON   string    `gorm:"type:jsonb" json:"-"` // line-item snapshot, append-only
	Total       float64   `gorm:"not null" json:"total"`
	ReceiptName string    `gorm:"type:varchar(512)" json:"receipt_name"`
	ReceiptSize int64     `json:"receipt_size"`
	Status      string    `gorm:"type:varchar(32);not null;default:'submitted'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CheckoutEvent is published to Kafka after a successful submission.
type CheckoutEvent struct {
	Event     string     `json:"event"` // e.g. "checkout.submitted"
	OrderID   string     `json:"order_id"`
	SessionID string     `json:"session_id"`
	Email     string     `json:"email"`
	Total     float64    `json:"total"`
	Items     []CartItem `json:"items"`
	Timestamp time.Time  `json:"timestamp"`
}
