package order

import (
	"time"

	"github.com/georgemunganga/awe-electronics/internal/modules/cart"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// Order is a completed purchase. Items are snapshots taken at checkout and do not follow
// later catalogue edits.
type Order struct {
	ID              int             `json:"id" yaml:"id"`
	UserID          int             `json:"userId" yaml:"userId"`
	OrderNumber     string          `json:"orderNumber" yaml:"orderNumber"`
	Status          Status          `json:"status" yaml:"status"`
	Items           []cart.LineItem `json:"items" yaml:"items"`
	ShippingAddress string          `json:"shippingAddress" yaml:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod" yaml:"paymentMethod"`
	Subtotal        float64         `json:"subtotal" yaml:"subtotal"`
	Tax             float64         `json:"tax" yaml:"tax"`
	Shipping        float64         `json:"shipping" yaml:"shipping"`
	Total           float64         `json:"total" yaml:"total"`
	TransactionID   string          `json:"transactionId,omitempty" yaml:"transactionId"`
	CreatedAt       time.Time       `json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" yaml:"updatedAt"`
}

// Receipt records the payment taken for one order.
type Receipt struct {
	ID            int       `json:"id" yaml:"id"`
	OrderID       int       `json:"orderId" yaml:"orderId"`
	ReceiptNumber string    `json:"receiptNumber" yaml:"receiptNumber"`
	Amount        float64   `json:"amount" yaml:"amount"`
	PaymentMethod string    `json:"paymentMethod" yaml:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`
}

func cloneOrder(o Order) Order {
	if o.Items != nil {
		items := make([]cart.LineItem, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	return o
}
