package customer

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
	"github.com/georgemunganga/awe-electronics/internal/logger"
	"github.com/georgemunganga/awe-electronics/internal/modules/cart"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/modules/payment"
	"github.com/georgemunganga/awe-electronics/internal/modules/postpurchase"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
)

// Service is the single entry point the storefront uses for browsing, carts and purchases.
type Service interface {
	GetAllProducts() []catalog.Product
	GetProduct(id int) (catalog.Product, bool)
	GetPaymentMethods() []string

	// ProcessPurchase charges the priced total of items and records the order. When the
	// payment fails no order is created and no post-purchase handler runs.
	ProcessPurchase(ctx context.Context, userID int, items []cart.LineItem, paymentMethod, shippingAddress string) (order.Order, error)
	GetOrder(id int) (order.Order, bool)
	GetReceipt(orderID int) (order.Receipt, bool)
	GetShipment(orderID int) (shipping.Shipment, bool)
	ListOrders(userID int) []order.Order

	GetCart(userID int) CartView
	AddToCart(userID, productID, quantity int) (cart.LineItem, error)
	UpdateCartItem(userID, productID, quantity int) (cart.LineItem, bool)
	RemoveCartItem(userID, productID int)
	// Checkout purchases the user's cart and empties it on success.
	Checkout(ctx context.Context, userID int, paymentMethod, shippingAddress string) (order.Order, error)
}

// CartView is a cart with its derived totals.
type CartView struct {
	Items []cart.LineItem `json:"items"`
	cart.Totals
}

// Deps are the shared stores and collaborators the facade coordinates.
type Deps struct {
	Products  catalog.Repository
	Orders    order.Repository
	Receipts  order.ReceiptRepository
	Shipments shipping.Repository
	Payments  *payment.Registry
	Notifier  *postpurchase.Notifier
	Carts     *cart.Sessions
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
	if d.Carts == nil {
		d.Carts = cart.NewSessions()
	}
	return &service{Deps: d}
}

func (s *service) GetAllProducts() []catalog.Product { return s.Products.GetAll() }

func (s *service) GetProduct(id int) (catalog.Product, bool) { return s.Products.GetByID(id) }

func (s *service) GetPaymentMethods() []string { return s.Payments.AvailableMethods() }

func (s *service) ProcessPurchase(ctx context.Context, userID int, items []cart.LineItem, paymentMethod, shippingAddress string) (order.Order, error) {
	log := logger.For(ctx, s.Log).With(zap.Int("user_id", userID))

	if len(items) == 0 {
		return order.Order{}, apperr.Invalid("items", "cart is empty")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return order.Order{}, apperr.Invalid("items", "quantity must be greater than 0")
		}
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return order.Order{}, apperr.Invalid("shippingAddress", "is required")
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return order.Order{}, apperr.Invalid("paymentMethod", "is required")
	}

	lines, err := s.currentLines(items)
	if err != nil {
		return order.Order{}, err
	}
	totals := cart.Price(lines)
	res := s.Payments.ProcessPayment(ctx, paymentMethod, totals.Total)
	if !res.Success {
		log.Warn("purchase rejected", zap.String("method", paymentMethod), zap.String("reason", res.Message))
		return order.Order{}, &apperr.PaymentError{Method: paymentMethod, Message: res.Message}
	}

	now := s.Now().UTC()
	created := s.Orders.Create(order.Order{
		UserID:          userID,
		OrderNumber:     order.GenerateOrderNumber(now),
		Status:          order.StatusProcessing,
		Items:           lines,
		ShippingAddress: shippingAddress,
		PaymentMethod:   paymentMethod,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		TransactionID:   res.TransactionID,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	log = log.With(zap.Int("order_id", created.ID), zap.String("order_number", created.OrderNumber))
	log.Info("order placed", zap.Float64("total", created.Total), zap.String("transaction_id", created.TransactionID))

	// The payment has been taken; handler failures are logged and never undo the order.
	if err := s.Notifier.Notify(ctx, postpurchase.Event{
		Order:         created,
		PaymentMethod: paymentMethod,
		PaymentAmount: totals.Total,
	}); err != nil {
		log.Error("post-purchase processing incomplete", zap.Error(err))
	}
	return created, nil
}

// currentLines reprices items from the catalogue, ignoring any client-supplied name or price.
func (s *service) currentLines(items []cart.LineItem) ([]cart.LineItem, error) {
	lines := make([]cart.LineItem, len(items))
	for i, it := range items {
		p, ok := s.Products.GetByID(it.ProductID)
		if !ok {
			return nil, apperr.NotFound("product", it.ProductID)
		}
		lines[i] = cart.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Image:     p.Image,
		}
	}
	return lines, nil
}

func (s *service) GetOrder(id int) (order.Order, bool) { return s.Orders.GetByID(id) }

func (s *service) GetReceipt(orderID int) (order.Receipt, bool) {
	return s.Receipts.GetByOrderID(orderID)
}

func (s *service) GetShipment(orderID int) (shipping.Shipment, bool) {
	return s.Shipments.GetByOrderID(orderID)
}

func (s *service) ListOrders(userID int) []order.Order { return s.Orders.ListByUser(userID) }

func (s *service) GetCart(userID int) CartView {
	c := s.Carts.Get(userID)
	items := c.Items()
	return CartView{Items: items, Totals: cart.Price(items)}
}

// AddToCart snapshots the product's current name, price and image into the line.
func (s *service) AddToCart(userID, productID, quantity int) (cart.LineItem, error) {
	p, ok := s.Products.GetByID(productID)
	if !ok {
		return cart.LineItem{}, apperr.NotFound("product", productID)
	}
	if !p.InStock() {
		return cart.LineItem{}, apperr.Invalid("productId", p.Name+" is out of stock")
	}
	return s.Carts.Get(userID).AddItem(cart.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  quantity,
		Image:     p.Image,
	})
}

func (s *service) UpdateCartItem(userID, productID, quantity int) (cart.LineItem, bool) {
	return s.Carts.Get(userID).UpdateQuantity(productID, quantity)
}

func (s *service) RemoveCartItem(userID, productID int) {
	s.Carts.Get(userID).RemoveItem(productID)
}

func (s *service) Checkout(ctx context.Context, userID int, paymentMethod, shippingAddress string) (order.Order, error) {
	c := s.Carts.Get(userID)
	o, err := s.ProcessPurchase(ctx, userID, c.Items(), paymentMethod, shippingAddress)
	if err != nil {
		return order.Order{}, err
	}
	c.Clear()
	return o, nil
}
