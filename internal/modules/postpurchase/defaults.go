package postpurchase

import (
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/config"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

// Stores are the repositories the default handlers write to.
type Stores struct {
	Products  catalog.Repository
	Receipts  order.ReceiptRepository
	Shipments shipping.Repository
	Users     user.Repository
}

// NewDefaultNotifier attaches, in order, the receipt generator, inventory adjuster and
// shipment creator, then the email notifier when sender is non-nil.
func NewDefaultNotifier(log *zap.Logger, stores Stores, shipCfg config.ShippingConfig, smtp config.SMTPConfig, sender Sender) *Notifier {
	n := NewNotifier(log)
	n.Attach(NewReceiptGenerator(stores.Receipts))
	n.Attach(NewInventoryAdjuster(stores.Products, log))
	n.Attach(NewShipmentCreator(stores.Shipments, shipCfg.Carrier))
	if sender != nil {
		n.Attach(NewEmailNotifier(sender, stores.Users, smtp.From, log))
	}
	return n
}
