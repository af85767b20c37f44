package shipping

import "time"

// Status is the delivery state of a shipment.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusInTransit Status = "In Transit"
	StatusDelivered Status = "Delivered"
)

// Shipment tracks the delivery of one order.
type Shipment struct {
	ID             int       `json:"id" yaml:"id"`
	OrderID        int       `json:"orderId" yaml:"orderId"`
	Status         Status    `json:"status" yaml:"status"`
	TrackingNumber string    `json:"trackingNumber" yaml:"trackingNumber"`
	Carrier        string    `json:"carrier" yaml:"carrier"`
	Address        string    `json:"address,omitempty" yaml:"address"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Delivered reports whether the shipment has reached the customer.
func (s Shipment) Delivered() bool { return s.Status == StatusDelivered }
