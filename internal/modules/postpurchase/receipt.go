package postpurchase

import (
	"context"

	"github.com/georgemunganga/awe-electronics/internal/modules/order"
)

// ReceiptGenerator issues one receipt per purchase for the amount actually paid.
type ReceiptGenerator struct {
	receipts order.ReceiptRepository
}

func NewReceiptGenerator(receipts order.ReceiptRepository) *ReceiptGenerator {
	return &ReceiptGenerator{receipts: receipts}
}

func (g *ReceiptGenerator) Name() string { return "receipt-generator" }

func (g *ReceiptGenerator) Handle(_ context.Context, ev Event) error {
	g.receipts.Create(order.Receipt{
		OrderID:       ev.Order.ID,
		Amount:        ev.PaymentAmount,
		PaymentMethod: ev.PaymentMethod,
	})
	return nil
}
