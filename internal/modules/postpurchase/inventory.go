package postpurchase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
)

// InventoryAdjuster takes purchased quantities off catalogue stock. Stock never drops below 0.
type InventoryAdjuster struct {
	products catalog.Repository
	log      *zap.Logger
}

func NewInventoryAdjuster(products catalog.Repository, log *zap.Logger) *InventoryAdjuster {
	if log == nil {
		log = zap.NewNop()
	}
	return &InventoryAdjuster{products: products, log: log}
}

func (a *InventoryAdjuster) Name() string { return "inventory-adjuster" }

// Handle adjusts every line it can. Lines for products no longer in the catalogue are
// reported after the rest have been applied.
func (a *InventoryAdjuster) Handle(_ context.Context, ev Event) error {
	var errs []error
	for _, it := range ev.Order.Items {
		p, err := a.products.AdjustStock(it.ProductID, -it.Quantity)
		if err != nil {
			errs = append(errs, fmt.Errorf("adjust stock for product %d: %w", it.ProductID, err))
			continue
		}
		if p.Stock == 0 {
			a.log.Warn("product out of stock", zap.Int("product_id", p.ID), zap.String("name", p.Name))
		}
	}
	return errors.Join(errs...)
}
