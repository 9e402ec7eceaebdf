// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
)

// OrderHandler handles HTTP requests for the order lifecycle and the
// delivered event history of each order.
type OrderHandler struct {
	svc     ports.OrderService
	history ports.OrderHistory
}

// NewOrderHandler creates a new OrderHandler with the given ports.
func NewOrderHandler(svc ports.OrderService, history ports.OrderHistory) *OrderHandler {
	return &OrderHandler{svc: svc, history: history}
}

// ListOrders handles GET /api/v1/orders.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListOrders(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderListResponse(list))
}

// PlaceOrder handles POST /api/v1/orders.
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceOrderRequest
	shipTo, ok := decodeAndConvert[orders.Address](w, r, &req)
	if !ok {
		return
	}

	created, err := h.svc.PlaceOrder(r.Context(), req.Customer, shipTo)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToOrderResponse(created))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	o, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderResponse(o))
}

// AddLine handles POST /api/v1/orders/{id}/lines.
func (h *OrderHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.AddLineRequest
	price, ok := decodeAndConvert[orders.Money](w, r, &req)
	if !ok {
		return
	}

	updated, err := h.svc.AddLine(r.Context(), id, req.SKU, req.Quantity, price)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderResponse(updated))
}

// ShipOrder handles POST /api/v1/orders/{id}/ship.
func (h *OrderHandler) ShipOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	shipped, err := h.svc.ShipOrder(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderResponse(shipped))
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CancelOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cancelled, err := h.svc.CancelOrder(r.Context(), id, req.Reason)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderResponse(cancelled))
}

// OrderEvents handles GET /api/v1/orders/{id}/events. Unknown orders are
// reported as 404 rather than an empty history.
func (h *OrderHandler) OrderEvents(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := h.svc.GetOrder(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entries, err := h.history.History(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToOrderHistoryResponse(id, entries))
}
