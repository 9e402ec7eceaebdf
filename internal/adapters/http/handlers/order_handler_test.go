package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-domain-primitives/internal/app"
	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
	"github.com/jsamuelsen11/go-domain-primitives/mocks"
)

func newOrderHandler(t *testing.T) (*handlers.OrderHandler, *mocks.MockOrderService, *mocks.MockOrderHistory) {
	t.Helper()
	svc := mocks.NewMockOrderService(t)
	history := mocks.NewMockOrderHistory(t)
	return handlers.NewOrderHandler(svc, history), svc, history
}

// --- ListOrders ---

func TestListOrders_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().ListOrders(mock.Anything).Return([]*orders.Order{pendingOrder(t, 1)}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	h.ListOrders(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.OrderListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListOrders_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().ListOrders(mock.Anything).Return(nil, fmt.Errorf("listing: %w", domain.ErrConflict))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	h.ListOrders(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

// --- PlaceOrder ---

func TestPlaceOrder_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().PlaceOrder(mock.Anything, "Ada", testAddress(t)).Return(pendingOrder(t, 1), nil)

	body := jsonBody(t, dto.PlaceOrderRequest{
		Customer: "Ada",
		ShipTo:   dto.AddressRequest{Street: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "us"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", body)
	h.PlaceOrder(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.OrderResponse](t, rec)
	if resp.ID != 1 {
		t.Errorf("ID = %d, want 1", resp.ID)
	}
	if resp.Status != "pending" {
		t.Errorf("Status = %q, want %q", resp.Status, "pending")
	}
}

func TestPlaceOrder_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _, _ := newOrderHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{not json"))
	h.PlaceOrder(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestPlaceOrder_ValidationError(t *testing.T) {
	t.Parallel()
	h, _, _ := newOrderHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", jsonBody(t, dto.PlaceOrderRequest{}))
	h.PlaceOrder(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) == 0 {
		t.Error("Errors is empty, want field errors")
	}
}

func TestPlaceOrder_PublishFailure(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().PlaceOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w for order 1: bus down", app.ErrPublish))

	body := jsonBody(t, dto.PlaceOrderRequest{
		Customer: "Ada",
		ShipTo:   dto.AddressRequest{Street: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"},
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", body)
	h.PlaceOrder(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
}

// --- GetOrder ---

func TestGetOrder_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().GetOrder(mock.Anything, 7).Return(pendingOrder(t, 7), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/orders/7", nil), map[string]string{"id": "7"})
	h.GetOrder(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.OrderResponse](t, rec); resp.ID != 7 {
		t.Errorf("ID = %d, want 7", resp.ID)
	}
}

func TestGetOrder_BadID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "0", "-3"} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			h, _, _ := newOrderHandler(t)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+raw, nil), map[string]string{"id": raw})
			h.GetOrder(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().GetOrder(mock.Anything, 9).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/orders/9", nil), map[string]string{"id": "9"})
	h.GetOrder(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- AddLine ---

func TestAddLine_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	price := orders.Money{Amount: 150, Currency: "EUR"}
	updated := pendingOrder(t, 5)
	if err := updated.AddLine("SKU-1", 2, price); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	svc.EXPECT().AddLine(mock.Anything, 5, "SKU-1", 2, price).Return(updated, nil)

	body := jsonBody(t, dto.AddLineRequest{SKU: "SKU-1", Quantity: 2, UnitPrice: dto.MoneyRequest{Amount: 150, Currency: "eur"}})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/orders/5/lines", body), map[string]string{"id": "5"})
	h.AddLine(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.OrderResponse](t, rec)
	if len(resp.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(resp.Lines))
	}
	if resp.Total.Amount != 300 {
		t.Errorf("Total.Amount = %d, want 300", resp.Total.Amount)
	}
}

func TestAddLine_ValidationError(t *testing.T) {
	t.Parallel()
	h, _, _ := newOrderHandler(t)

	body := jsonBody(t, dto.AddLineRequest{SKU: "SKU-1"})
	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/orders/5/lines", body), map[string]string{"id": "5"})
	h.AddLine(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- ShipOrder ---

func TestShipOrder_Conflict(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().ShipOrder(mock.Anything, 2).Return(nil, fmt.Errorf("%w: order 2 has no lines", domain.ErrConflict))

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/orders/2/ship", nil), map[string]string{"id": "2"})
	h.ShipOrder(rec, req)

	requireStatus(t, rec, http.StatusConflict)
}

func TestShipOrder_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	o := pendingOrder(t, 2)
	if err := o.AddLine("SKU", 1, orders.Money{Amount: 100, Currency: "EUR"}); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	if err := o.Ship(); err != nil {
		t.Fatalf("Ship() error = %v", err)
	}
	svc.EXPECT().ShipOrder(mock.Anything, 2).Return(o, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/orders/2/ship", nil), map[string]string{"id": "2"})
	h.ShipOrder(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.OrderResponse](t, rec); resp.Status != "shipped" {
		t.Errorf("Status = %q, want %q", resp.Status, "shipped")
	}
}

// --- CancelOrder ---

func TestCancelOrder_Success(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	o := pendingOrder(t, 4)
	if err := o.Cancel("late"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	svc.EXPECT().CancelOrder(mock.Anything, 4, "late").Return(o, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, "/api/v1/orders/4/cancel", jsonBody(t, dto.CancelOrderRequest{Reason: "late"})),
		map[string]string{"id": "4"},
	)
	h.CancelOrder(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.OrderResponse](t, rec); resp.Status != "cancelled" {
		t.Errorf("Status = %q, want %q", resp.Status, "cancelled")
	}
}

func TestCancelOrder_MissingReason(t *testing.T) {
	t.Parallel()
	h, _, _ := newOrderHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodPost, "/api/v1/orders/4/cancel", jsonBody(t, dto.CancelOrderRequest{})),
		map[string]string{"id": "4"},
	)
	h.CancelOrder(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- OrderEvents ---

func TestOrderEvents_Success(t *testing.T) {
	t.Parallel()
	h, svc, history := newOrderHandler(t)

	svc.EXPECT().GetOrder(mock.Anything, 3).Return(pendingOrder(t, 3), nil)
	history.EXPECT().History(mock.Anything, 3).Return([]ports.OrderEvent{
		{EventID: uuid.New(), Type: "OrderPlaced", Message: "Order 3 placed by Ada.", OccurredAt: time.Now()},
	}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/orders/3/events", nil), map[string]string{"id": "3"})
	h.OrderEvents(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.OrderHistoryResponse](t, rec)
	if resp.Count != 1 || resp.Events[0].Type != "OrderPlaced" {
		t.Errorf("history = %+v, want one OrderPlaced event", resp)
	}
}

func TestOrderEvents_UnknownOrder(t *testing.T) {
	t.Parallel()
	h, svc, _ := newOrderHandler(t)

	svc.EXPECT().GetOrder(mock.Anything, 3).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/orders/3/events", nil), map[string]string{"id": "3"})
	h.OrderEvents(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
