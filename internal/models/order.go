package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// OrderStatus represents the status of a shop order
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// Order represents a shop order. Orders are owned by the external shop
// backend; when it is unreachable a checkout produces a session-backed
// order with a locally generated number.
type Order struct {
	OrderNumber  string      `json:"order_number"`
	Status       OrderStatus `json:"status"`
	Items        []CartItem  `json:"items"`
	Subtotal     int         `json:"subtotal"`
	ShippingCost int         `json:"shipping_cost"`
	Total        int         `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`

	// StatusDisplay carries the German status label for the UI. Filled in
	// by the handler before the order is written out.
	StatusDisplay string `json:"status_display,omitempty"`
}

// OrderCreateRequest is the body sent to the shop backend when checking out
type OrderCreateRequest struct {
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	ShippingAddress string     `json:"shipping_address"`
	Items           []CartItem `json:"items"`
}

// Validate validates the checkout request
func (req *OrderCreateRequest) Validate() error {
	if msg := ValidateEmail(req.Email); msg != "" {
		return errors.New("invalid billing email")
	}
	if req.Name == "" {
		return errors.New("billing name is required")
	}
	if len(req.Items) == 0 {
		return errors.New("order has no items")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("invalid quantity for product %s", item.ProductID)
		}
	}
	return nil
}

// ValidOrderStatus reports whether the status value is known
func ValidOrderStatus(status OrderStatus) bool {
	switch status {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	default:
		return false
	}
}

// GetStatusDisplayName returns a human-readable status name
func (o *Order) GetStatusDisplayName() string {
	switch o.Status {
	case OrderPending:
		return "Offen"
	case OrderProcessing:
		return "In Bearbeitung"
	case OrderShipped:
		return "Versendet"
	case OrderDelivered:
		return "Zugestellt"
	case OrderCancelled:
		return "Storniert"
	case OrderRefunded:
		return "Erstattet"
	default:
		return string(o.Status)
	}
}

// GenerateOrderNumber generates a unique order number in the format
// ORD-YYYYMMDD-XXXXXX, used by the fallback path when the shop backend is
// unreachable.
func GenerateOrderNumber() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fallback to timestamp-based generation if crypto/rand fails
		timestamp := now.UnixNano()
		return fmt.Sprintf("ORD-%s-%06d", dateStr, timestamp%1000000)
	}

	return fmt.Sprintf("ORD-%s-%06d", dateStr, randomNum.Int64())
}
