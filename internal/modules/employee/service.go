package employee

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
	"github.com/georgemunganga/awe-electronics/internal/logger"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

// Service is the staff entry point for catalogue maintenance and store oversight.
type Service interface {
	GetAllProducts() []catalog.Product
	GetProduct(id int) (catalog.Product, bool)
	// UpdateProductDescription changes only the description. A missing product leaves the
	// catalogue untouched.
	UpdateProductDescription(ctx context.Context, id int, description string) (catalog.Product, error)
	UpdateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	AddProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	GetDashboardData() Dashboard
	ExportInventoryCSV(w io.Writer) error
	// UpdateShipmentStatus moves an order's shipment along and mirrors the change on the order.
	UpdateShipmentStatus(ctx context.Context, orderID int, status shipping.Status) (shipping.Shipment, error)
}

// Deps are the shared stores the facade reads and edits.
type Deps struct {
	Products  catalog.Repository
	Orders    order.Repository
	Shipments shipping.Repository
	Users     user.Repository
	Log       *zap.Logger
	Now       func() time.Time
}

type service struct {
	Deps
}

func NewService(d Deps) Service {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &service{Deps: d}
}

func (s *service) GetAllProducts() []catalog.Product { return s.Products.GetAll() }

func (s *service) GetProduct(id int) (catalog.Product, bool) { return s.Products.GetByID(id) }

func (s *service) UpdateProductDescription(ctx context.Context, id int, description string) (catalog.Product, error) {
	updated, err := s.Products.UpdateDescription(id, description)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("update description: %w", err)
	}
	logger.For(ctx, s.Log).Info("product description updated", zap.Int("product_id", id))
	return updated, nil
}

func (s *service) UpdateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if err := checkProduct(p); err != nil {
		return catalog.Product{}, err
	}
	updated, err := s.Products.Update(p)
	if err != nil {
		return catalog.Product{}, err
	}
	logger.For(ctx, s.Log).Info("product updated", zap.Int("product_id", p.ID))
	return updated, nil
}

func (s *service) AddProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if err := checkProduct(p); err != nil {
		return catalog.Product{}, err
	}
	added := s.Products.Add(p)
	logger.For(ctx, s.Log).Info("product added", zap.Int("product_id", added.ID), zap.String("name", added.Name))
	return added, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Products.Delete(id); err != nil {
		return err
	}
	logger.For(ctx, s.Log).Info("product deleted", zap.Int("product_id", id))
	return nil
}

func checkProduct(p catalog.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return apperr.Invalid("name", "is required")
	case p.Price < 0:
		return apperr.Invalid("price", "must be at least 0")
	case p.Stock < 0:
		return apperr.Invalid("stock", "must be at least 0")
	}
	return nil
}

func (s *service) GetDashboardData() Dashboard {
	orders := s.Orders.List()
	products := s.Products.GetAll()

	recent := make([]order.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].CreatedAt.After(recent[j].CreatedAt)
		}
		return recent[i].ID > recent[j].ID
	})

	return Dashboard{
		Statistics:       s.statistics(orders),
		RecentOrders:     recent,
		InventoryItems:   inventory(products),
		PendingShipments: s.pendingShipments(orders),
	}
}

func (s *service) statistics(orders []order.Order) Statistics {
	revenue := decimal.Zero
	sold := map[int]*TopSeller{}
	for _, o := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
		for _, it := range o.Items {
			ts, ok := sold[it.ProductID]
			if !ok {
				ts = &TopSeller{ID: it.ProductID, Name: it.Name}
				sold[it.ProductID] = ts
			}
			ts.Quantity += it.Quantity
		}
	}

	top := make([]TopSeller, 0, len(sold))
	for _, ts := range sold {
		top = append(top, *ts)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].ID < top[j].ID
	})
	if len(top) > topSellerCount {
		top = top[:topSellerCount]
	}

	stats := Statistics{
		OrdersCount:        len(orders),
		TotalRevenue:       revenue.Round(2).InexactFloat64(),
		TopSellingProducts: top,
		UpdatedAt:          s.Now().UTC(),
	}
	if len(orders) > 0 {
		stats.AverageOrderValue = revenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2).InexactFloat64()
	}
	return stats
}

func inventory(products []catalog.Product) []InventoryItem {
	items := make([]InventoryItem, len(products))
	for i, p := range products {
		items[i] = InventoryItem{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Stock,
			Status:   stockStatus(p.Stock),
		}
	}
	return items
}

// pendingShipments projects every order, preferring the shipment's status when one exists.
func (s *service) pendingShipments(orders []order.Order) []PendingShipment {
	out := make([]PendingShipment, len(orders))
	for i, o := range orders {
		ps := PendingShipment{
			OrderID:      o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: "Unknown",
			Date:         o.CreatedAt,
			Status:       string(o.Status),
		}
		if u, ok := s.Users.GetByID(o.UserID); ok {
			ps.CustomerName = u.Name
		}
		if sh, ok := s.Shipments.GetByOrderID(o.ID); ok {
			ps.Status = string(sh.Status)
			ps.TrackingNumber = sh.TrackingNumber
			ps.Carrier = sh.Carrier
		}
		out[i] = ps
	}
	return out
}

// ExportInventoryCSV writes the dashboard's inventory table, header first.
func (s *service) ExportInventoryCSV(w io.Writer) error {
	items := inventory(s.Products.GetAll())
	if err := gocsv.Marshal(&items, w); err != nil {
		return fmt.Errorf("export inventory: %w", err)
	}
	return nil
}

var orderStatusFor = map[shipping.Status]order.Status{
	shipping.StatusPending:   order.StatusProcessing,
	shipping.StatusInTransit: order.StatusShipped,
	shipping.StatusDelivered: order.StatusDelivered,
}

func (s *service) UpdateShipmentStatus(ctx context.Context, orderID int, status shipping.Status) (shipping.Shipment, error) {
	next, ok := orderStatusFor[status]
	if !ok {
		return shipping.Shipment{}, apperr.Invalid("status", fmt.Sprintf("unknown shipment status %q", status))
	}
	o, ok := s.Orders.GetByID(orderID)
	if !ok {
		return shipping.Shipment{}, apperr.NotFound("order", orderID)
	}
	sh, ok := s.Shipments.GetByOrderID(orderID)
	if !ok {
		return shipping.Shipment{}, apperr.NotFound("shipment for order", orderID)
	}

	sh, err := s.Shipments.UpdateStatus(sh.ID, status)
	if err != nil {
		return shipping.Shipment{}, err
	}
	o.Status = next
	if _, err := s.Orders.Update(o); err != nil {
		return shipping.Shipment{}, fmt.Errorf("update order status: %w", err)
	}

	logger.For(ctx, s.Log).Info("shipment status changed",
		zap.Int("order_id", orderID),
		zap.String("status", string(status)),
	)
	return sh, nil
}
