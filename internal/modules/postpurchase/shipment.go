package postpurchase

import (
	"context"

	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
)

// ShipmentCreator opens a pending shipment for each purchase.
type ShipmentCreator struct {
	shipments shipping.Repository
	carrier   string
}

func NewShipmentCreator(shipments shipping.Repository, carrier string) *ShipmentCreator {
	return &ShipmentCreator{shipments: shipments, carrier: carrier}
}

func (c *ShipmentCreator) Name() string { return "shipment-creator" }

func (c *ShipmentCreator) Handle(_ context.Context, ev Event) error {
	c.shipments.Create(shipping.Shipment{
		OrderID: ev.Order.ID,
		Status:  shipping.StatusPending,
		Carrier: c.carrier,
		Address: ev.Order.ShippingAddress,
	})
	return nil
}
