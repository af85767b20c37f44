package main

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/georgemunganga/awe-electronics/internal/config"
	"github.com/georgemunganga/awe-electronics/internal/logger"
	"github.com/georgemunganga/awe-electronics/internal/modules/auth"
	"github.com/georgemunganga/awe-electronics/internal/modules/cart"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/customer"
	"github.com/georgemunganga/awe-electronics/internal/modules/employee"
	"github.com/georgemunganga/awe-electronics/internal/modules/order"
	"github.com/georgemunganga/awe-electronics/internal/modules/payment"
	"github.com/georgemunganga/awe-electronics/internal/modules/postpurchase"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
	"github.com/georgemunganga/awe-electronics/internal/seed"
	"github.com/georgemunganga/awe-electronics/internal/validation"
)

// newRouter builds every store once and shares it between both facades, so staff edits
// are what shoppers see.
func newRouter(cfg *config.Config, ds *seed.Dataset, log *zap.Logger, now func() time.Time) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(logger.RequestLogger(log))
	router.Use(middleware.Recoverer)

	// ── Stores ──────────────────────────────────────────────
	userRepo := user.NewMemoryRepository(ds.Users)
	productRepo := catalog.NewMemoryRepository(ds.Products)
	orderRepo := order.NewMemoryRepository(ds.Orders, now)
	receiptRepo := order.NewMemoryReceiptRepository(ds.Receipts, now)
	shipmentRepo := shipping.NewMemoryRepository(ds.Shipments, now)
	carts := cart.NewSessions()

	// ── Payments & post-purchase ────────────────────────────
	payments := payment.NewDefaultRegistry(log.Named("payment"), cfg.Payment.InStore, now)

	var sender postpurchase.Sender
	if cfg.SMTP.Enabled() {
		sender = postpurchase.NewSMTPSender(cfg.SMTP)
	}
	notifier := postpurchase.NewDefaultNotifier(log.Named("postpurchase"), postpurchase.Stores{
		Products:  productRepo,
		Receipts:  receiptRepo,
		Shipments: shipmentRepo,
		Users:     userRepo,
	}, cfg.Shipping, cfg.SMTP, sender)

	// ── Facades ─────────────────────────────────────────────
	authService := auth.NewService(userRepo, cfg.Auth, log.Named("auth"))
	validator := validation.NewRequestValidator()

	customerService := customer.NewService(customer.Deps{
		Products:  productRepo,
		Orders:    orderRepo,
		Receipts:  receiptRepo,
		Shipments: shipmentRepo,
		Payments:  payments,
		Notifier:  notifier,
		Carts:     carts,
		Log:       log.Named("customer"),
		Now:       now,
	})
	employeeService := employee.NewService(employee.Deps{
		Products:  productRepo,
		Orders:    orderRepo,
		Shipments: shipmentRepo,
		Users:     userRepo,
		Log:       log.Named("employee"),
		Now:       now,
	})

	auth.NewHandler(authService, validator).RegisterRoutes(router)
	customer.NewHandler(customerService, authService, validator).RegisterRoutes(router)
	employee.NewHandler(employeeService, authService, validator).RegisterRoutes(router)

	return router
}
