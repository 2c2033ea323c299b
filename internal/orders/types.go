package orders

import (
	"encoding/json"
	"time"
)

// PaymentStatusPending is the only status this system ever writes. Payment
// confirmation happens (if at all) outside of it.
const PaymentStatusPending = "pending"

// NewOrder carries the validated fields of an order about to be inserted.
type NewOrder struct {
	OrderNumber     string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	DeliveryMethod  string
	PaymentMethod   string
	TotalAmount     float64
	ItemsJSON       string  // serialized line items, stored opaquely
	UserID          *string // nil for guest checkout
}

// Order is the projection returned by customer order lookups.
type Order struct {
	ID             int64
	OrderNumber    string
	CustomerName   string
	CustomerEmail  string
	DeliveryMethod string
	PaymentMethod  string
	PaymentStatus  string
	TotalAmount    float64
	Items          []json.RawMessage
	CreatedAt      *time.Time
}
