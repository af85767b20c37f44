package employee

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/awe-electronics/internal/apperr"
	"github.com/georgemunganga/awe-electronics/internal/modules/auth"
	"github.com/georgemunganga/awe-electronics/internal/modules/catalog"
	"github.com/georgemunganga/awe-electronics/internal/modules/shipping"
	"github.com/georgemunganga/awe-electronics/internal/modules/user"
	"github.com/georgemunganga/awe-electronics/internal/validation"
)

// Handler exposes staff-only HTTP endpoints.
type Handler struct {
	service   Service
	auth      auth.Service
	validator *validation.RequestValidator
}

func NewHandler(service Service, authService auth.Service, validator *validation.RequestValidator) *Handler {
	return &Handler{service: service, auth: authService, validator: validator}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Authenticate(h.auth))
		r.Use(auth.RequireRole(user.RoleEmployee))

		r.Post("/api/v1/products", h.addProduct)
		r.Put("/api/v1/products/{id}", h.updateProduct)
		r.Patch("/api/v1/products/{id}/description", h.updateDescription)
		r.Delete("/api/v1/products/{id}", h.deleteProduct)

		r.Get("/api/v1/dashboard", h.dashboard)
		r.Get("/api/v1/dashboard/inventory.csv", h.exportInventory)

		r.Patch("/api/v1/orders/{id}/shipment", h.updateShipment)
	})
}

type descriptionRequest struct {
	Description string `json:"description"`
}

type shipmentRequest struct {
	Status shipping.Status `json:"status" validate:"required"`
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := h.validator.Decode(r.Body, &p); err != nil {
		writeError(w, err)
		return
	}
	added, err := h.service.AddProduct(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusCreated, added)
}

// updateProduct replaces the whole product; the path id wins over any id in the body.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var p catalog.Product
	if err := h.validator.Decode(r.Body, &p); err != nil {
		writeError(w, err)
		return
	}
	p.ID = id
	updated, err := h.service.UpdateProduct(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, updated)
}

func (h *Handler) updateDescription(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var req descriptionRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.service.UpdateProductDescription(r.Context(), id, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, updated)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.GetDashboardData())
}

func (h *Handler) exportInventory(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.ExportInventoryCSV(&buf); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) updateShipment(w http.ResponseWriter, r *http.Request) {
	id, ok := intParam(w, r, "id")
	if !ok {
		return
	}
	var req shipmentRequest
	if err := h.validator.Decode(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}
	sh, err := h.service.UpdateShipmentStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	respond(w, http.StatusOK, sh)
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
