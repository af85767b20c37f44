package employee

import (
	"time"

	"github.com/georgemunganga/awe-electronics/internal/modules/order"
)

const (
	StockInStock    = "In Stock"
	StockLow        = "Low Stock"
	StockOutOfStock = "Out of Stock"

	// lowStockThreshold is the largest stock level still reported as low.
	lowStockThreshold = 10
	topSellerCount    = 3
)

// Dashboard is the staff overview. Every field is computed on request.
type Dashboard struct {
	Statistics       Statistics        `json:"statistics"`
	RecentOrders     []order.Order     `json:"recentOrders"`
	InventoryItems   []InventoryItem   `json:"inventoryItems"`
	PendingShipments []PendingShipment `json:"pendingShipments"`
}

type Statistics struct {
	OrdersCount        int         `json:"ordersCount"`
	TotalRevenue       float64     `json:"totalRevenue"`
	AverageOrderValue  float64     `json:"averageOrderValue"`
	TopSellingProducts []TopSeller `json:"topSellingProducts"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// TopSeller is a product ranked by units sold across all orders.
type TopSeller struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// InventoryItem is a product annotated with its stock status. The csv tags define the
// inventory export columns.
type InventoryItem struct {
	ID       int     `json:"id" csv:"id"`
	Name     string  `json:"name" csv:"name"`
	Category string  `json:"category" csv:"category"`
	Price    float64 `json:"price" csv:"price"`
	Stock    int     `json:"stock" csv:"stock"`
	Status   string  `json:"status" csv:"status"`
}

// PendingShipment is the delivery view of one order.
type PendingShipment struct {
	OrderID        int       `json:"orderId"`
	OrderNumber    string    `json:"orderNumber"`
	CustomerName   string    `json:"customerName"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	TrackingNumber string    `json:"trackingNumber,omitempty"`
	Carrier        string    `json:"carrier,omitempty"`
}

func stockStatus(stock int) string {
	switch {
	case stock > lowStockThreshold:
		return StockInStock
	case stock > 0:
		return StockLow
	default:
		return StockOutOfStock
	}
}
