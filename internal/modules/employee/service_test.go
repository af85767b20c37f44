package employee

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
	"github.com/georgemunganga/awe-electronics/internal/modules/cart"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
)

var testNow = func() time.Time { return time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC) }

type fixture struct {
	svc       Service
	products  catalog.Repository
	orders    order.Repository
	shipments shipping.Repository
}

func day(d int) time.Time { return time.Date(2024, 10, d, 0, 0, 0, 0, time.UTC) }

func newFixture() *fixture {
	f := &fixture{
		products: catalog.NewMemoryRepository([]catalog.Product{
			{ID: 1, Name: "Soldering Station Kit", Description: "60W kit", Price: 89.95, Category: "Tools", Stock: 12},
			{ID: 2, Name: "Arduino-Compatible UNO Board", Price: 39.95, Category: "Components", Stock: 10},
			{ID: 3, Name: "Digital Multimeter", Price: 59.99, Category: "Tools", Stock: 0},
			{ID: 5, Name: "Jumper Wire Set", Price: 9.95, Category: "Components", Stock: 1},
		}),
		orders: order.NewMemoryRepository([]order.Order{
			{ID: 1, UserID: 1, OrderNumber: "ORD-70001", Status: order.StatusDelivered, CreatedAt: day(1), Total: 169.85,
				Items: []cart.LineItem{{ProductID: 1, Name: "Soldering Station Kit", Quantity: 1}, {ProductID: 2, Name: "Arduino-Compatible UNO Board", Quantity: 2}}},
			{ID: 2, UserID: 1, OrderNumber: "ORD-70002", Status: order.StatusShipped, CreatedAt: day(3), Total: 89.84,
				Items: []cart.LineItem{{ProductID: 5, Name: "Jumper Wire Set", Quantity: 3}, {ProductID: 3, Name: "Digital Multimeter", Quantity: 1}}},
			{ID: 3, UserID: 9, OrderNumber: "ORD-70003", Status: order.StatusProcessing, CreatedAt: day(2), Total: 10.00,
				Items: []cart.LineItem{{ProductID: 2, Name: "Arduino-Compatible UNO Board", Quantity: 1}}},
		}, testNow),
		shipments: shipping.NewMemoryRepository([]shipping.Shipment{
			{ID: 1, OrderID: 1, Status: shipping.StatusDelivered, TrackingNumber: "TRK-JAY123", Carrier: "Australia Post"},
			{ID: 2, OrderID: 2, Status: shipping.StatusInTransit, TrackingNumber: "TRK-JAY456", Carrier: "StarTrack"},
		}, testNow),
	}
	f.svc = NewService(Deps{
		Products:  f.products,
		Orders:    f.orders,
		Shipments: f.shipments,
		Users:     user.NewMemoryRepository([]user.User{{ID: 1, Name: "Alice Customer"}}),
		Log:       zap.NewNop(),
		Now:       testNow,
	})
	return f
}

func TestUpdateProductDescription(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p, err := f.svc.UpdateProductDescription(ctx, 1, "80W kit with stand")
	require.NoError(t, err)
	assert.Equal(t, "80W kit with stand", p.Description)
	assert.Equal(t, 89.95, p.Price)

	before := f.products.GetAll()
	_, err = f.svc.UpdateProductDescription(ctx, 42, "ghost")
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, before, f.products.GetAll())
}

// saleBeforeWrite simulates a checkout that lands between the facade's first store call and
// its write.
type saleBeforeWrite struct {
	catalog.Repository
	once sync.Once
}

func (r *saleBeforeWrite) sell() {
	r.once.Do(func() { _, _ = r.Repository.AdjustStock(2, -5) })
}

func (r *saleBeforeWrite) GetByID(id int) (catalog.Product, bool) {
	r.sell()
	return r.Repository.GetByID(id)
}

func (r *saleBeforeWrite) UpdateDescription(id int, description string) (catalog.Product, error) {
	r.sell()
	return r.Repository.UpdateDescription(id, description)
}

func TestUpdateProductDescription_KeepsConcurrentStockChange(t *testing.T) {
	f := newFixture()
	products := &saleBeforeWrite{Repository: f.products}
	svc := NewService(Deps{
		Products:  products,
		Orders:    f.orders,
		Shipments: f.shipments,
		Log:       zap.NewNop(),
		Now:       testNow,
	})

	p, err := svc.UpdateProductDescription(context.Background(), 2, "USB-C")
	require.NoError(t, err)
	assert.Equal(t, "USB-C", p.Description)
	assert.Equal(t, 5, p.Stock)

	stored, ok := f.products.GetByID(2)
	require.True(t, ok)
	assert.Equal(t, 5, stored.Stock)
}

func TestProductCRUD(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	added, err := f.svc.AddProduct(ctx, catalog.Product{Name: "Breadboard", Price: 7.5, Stock: 40})
	require.NoError(t, err)
	assert.Equal(t, 6, added.ID)

	_, err = f.svc.AddProduct(ctx, catalog.Product{Name: " ", Price: 1})
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
	_, err = f.svc.UpdateProduct(ctx, catalog.Product{ID: 1, Name: "Kit", Price: -1})
	assert.ErrorAs(t, err, &ve)

	updated, err := f.svc.UpdateProduct(ctx, catalog.Product{ID: 6, Name: "Breadboard XL", Price: 9, Stock: 5})
	require.NoError(t, err)
	got, _ := f.svc.GetProduct(6)
	assert.Equal(t, updated, got)

	_, err = f.svc.UpdateProduct(ctx, catalog.Product{ID: 77, Name: "Ghost"})
	assert.True(t, apperr.IsNotFound(err))

	require.NoError(t, f.svc.DeleteProduct(ctx, 6))
	assert.True(t, apperr.IsNotFound(f.svc.DeleteProduct(ctx, 6)))
	assert.Len(t, f.svc.GetAllProducts(), 4)
}

func TestGetDashboardData(t *testing.T) {
	f := newFixture()
	d := f.svc.GetDashboardData()

	assert.Equal(t, 3, d.Statistics.OrdersCount)
	assert.Equal(t, 269.69, d.Statistics.TotalRevenue)
	assert.Equal(t, 89.9, d.Statistics.AverageOrderValue)
	assert.Equal(t, testNow(), d.Statistics.UpdatedAt)
	assert.Equal(t, []TopSeller{
		{ID: 2, Name: "Arduino-Compatible UNO Board", Quantity: 3},
		{ID: 5, Name: "Jumper Wire Set", Quantity: 3},
		{ID: 1, Name: "Soldering Station Kit", Quantity: 1},
	}, d.Statistics.TopSellingProducts)

	require.Len(t, d.RecentOrders, 3)
	assert.Equal(t, []int{2, 3, 1}, []int{d.RecentOrders[0].ID, d.RecentOrders[1].ID, d.RecentOrders[2].ID})

	statuses := map[int]string{}
	for _, it := range d.InventoryItems {
		statuses[it.ID] = it.Status
	}
	assert.Equal(t, map[int]string{1: StockInStock, 2: StockLow, 3: StockOutOfStock, 5: StockLow}, statuses)

	require.Len(t, d.PendingShipments, 3)
	assert.Equal(t, "Alice Customer", d.PendingShipments[0].CustomerName)
	assert.Equal(t, "Delivered", d.PendingShipments[0].Status)
	assert.Equal(t, "In Transit", d.PendingShipments[1].Status)
	assert.Equal(t, "StarTrack", d.PendingShipments[1].Carrier)
	assert.Equal(t, "Unknown", d.PendingShipments[2].CustomerName)
	assert.Equal(t, "Processing", d.PendingShipments[2].Status)
}

func TestGetDashboardData_Empty(t *testing.T) {
	svc := NewService(Deps{
		Products:  catalog.NewMemoryRepository(nil),
		Orders:    order.NewMemoryRepository(nil, nil),
		Shipments: shipping.NewMemoryRepository(nil, nil),
		Users:     user.NewMemoryRepository(nil),
	})
	d := svc.GetDashboardData()
	assert.Zero(t, d.Statistics.OrdersCount)
	assert.Zero(t, d.Statistics.AverageOrderValue)
	assert.Empty(t, d.Statistics.TopSellingProducts)
	assert.Empty(t, d.RecentOrders)
}

func TestExportInventoryCSV(t *testing.T) {
	f := newFixture()
	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportInventoryCSV(&buf))

	assert.Equal(t, "id,name,category,price,stock,status\n"+
		"1,Soldering Station Kit,Tools,89.95,12,In Stock\n"+
		"2,Arduino-Compatible UNO Board,Components,39.95,10,Low Stock\n"+
		"3,Digital Multimeter,Tools,59.99,0,Out of Stock\n"+
		"5,Jumper Wire Set,Components,9.95,1,Low Stock\n", buf.String())
}

func TestUpdateShipmentStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	sh, err := f.svc.UpdateShipmentStatus(ctx, 2, shipping.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, shipping.StatusDelivered, sh.Status)
	o, _ := f.orders.GetByID(2)
	assert.Equal(t, order.StatusDelivered, o.Status)

	_, err = f.svc.UpdateShipmentStatus(ctx, 3, shipping.StatusInTransit)
	assert.True(t, apperr.IsNotFound(err))
	_, err = f.svc.UpdateShipmentStatus(ctx, 2, "Lost")
	var ve *apperr.ValidationError
	assert.ErrorAs(t, err, &ve)
}
