package customer

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
	"github.com/georgemunganga/awe-electronics/internal/modules/auth"
	"github.com/georgemunganga/awe-electronics/internal/modules/cart"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
	"github.com/georgemunganga/awe-electronics/internal/validation"
)

// Handler exposes storefront HTTP endpoints.
type Handler struct {
	service   Service
	auth      auth.Service
	validator *validation.RequestValidator
}

func NewHandler(service Service, authService auth.Service, validator *validation.RequestValidator) *Handler {
	return &Handler{service: service, auth: authService, validator: validator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/v1/products", h.listProducts)
	r.Get("/api/v1/products/{id}", h.getProduct)
	r.Get("/api/v1/payment-methods", h.paymentMethods)

	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(h.auth))

		r.Route("/api/v1/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Post("/items", h.addCartItem)
			r.Patch("/items/{productId}", h.updateCartItem)
			r.Delete("/items/{productId}", h.removeCartItem)
			r.Post("/checkout", h.checkout)
		})

		r.Post("/api/v1/orders", h.placeOrder)
		r.Get("/api/v1/orders", h.listOrders)
		r.Get("/api/v1/orders/{id}", h.getOrder)
		r.Get("/api/v1/orders/{id}/shipment", h.getShipment)
		r.Get("/api/v1/receipts/{orderId}", h.getReceipt)
	})
}

// ── Catalogue ─────────────────────────────────────────────────────────────────

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.GetAllProducts())
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	p, found := h.service.GetProduct(id)
	if !found {
		writeError(w, apperr.NotFound("product", id))
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) paymentMethods(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.GetPaymentMethods())
}

// ── Cart ──────────────────────────────────────────────────────────────────────

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"gt=0"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	PaymentMethod   string `json:"paymentMethod" validate:"required"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.GetCart(currentUserID(r)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	line, err := h.service.AddToCart(currentUserID(r), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, line)
}

// updateCartItem sets a line's quantity; zero or less removes it.
func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := intParam(w, r, "productId")
	if !ok {
		return
	}
	var req updateItemRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	userID := currentUserID(r)
	if _, updated := h.service.UpdateCartItem(userID, productID, req.Quantity); !updated && req.Quantity > 0 {
		writeError(w, apperr.NotFound("cart item", productID))
		return
	}
	respond(w, http.StatusOK, h.service.GetCart(userID))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := intParam(w, r, "productId")
	if !ok {
		return
	}
	userID := currentUserID(r)
	h.service.RemoveCartItem(userID, productID)
	respond(w, http.StatusOK, h.service.GetCart(userID))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	o, err := h.service.Checkout(r.Context(), currentUserID(r), req.PaymentMethod, req.ShippingAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, o)
}

// ── Orders ────────────────────────────────────────────────────────────────────

type purchaseRequest struct {
	Items           []cart.LineItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required"`
	ShippingAddress string          `json:"shippingAddress" validate:"required"`
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	o, err := h.service.ProcessPurchase(r.Context(), currentUserID(r), req.Items, req.PaymentMethod, req.ShippingAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	if q := r.URL.Query().Get("userId"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, apperr.Invalid("userId", "must be an integer"))
			return
		}
		userID = id
	}
	if !canView(r, userID) {
		respond(w, http.StatusForbidden, map[string]string{"error": "cannot view another customer's orders"})
		return
	}
	respond(w, http.StatusOK, h.service.ListOrders(userID))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	o, found := h.service.GetOrder(id)
	if !found || !canView(r, o.UserID) {
		writeError(w, apperr.NotFound("order", id))
		return
	}
	respond(w, http.StatusOK, o)
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	o, found := h.service.GetOrder(id)
	if !found || !canView(r, o.UserID) {
		writeError(w, apperr.NotFound("order", id))
		return
	}
	s, found := h.service.GetShipment(id)
	if !found {
		writeError(w, apperr.NotFound("shipment for order", id))
		return
	}
	respond(w, http.StatusOK, s)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	orderID, ok := intParam(w, r, "orderId")
	if !ok {
		return
	}
	o, found := h.service.GetOrder(orderID)
	if !found || !canView(r, o.UserID) {
		writeError(w, apperr.NotFound("order", orderID))
		return
	}
	rc, found := h.service.GetReceipt(orderID)
	if !found {
		writeError(w, apperr.NotFound("receipt for order", orderID))
		return
	}
	respond(w, http.StatusOK, rc)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func currentUserID(r *http.Request) int {
	if c, ok := auth.ClaimsFromContext(r.Context()); ok {
		return c.UserID
	}
	return 0
}

// canView lets customers see their own records and employees see everyone's.
func canView(r *http.Request, ownerID int) bool {
	c, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return false
	}
	return c.Role == user.RoleEmployee || c.UserID == ownerID
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		writeError(w, apperr.Invalid(name, "must be an integer"))
		return 0, false
	}
	return v, true
}

func writeError(w http.ResponseWriter, err error) {
	respond(w, apperr.StatusCode(err), map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
