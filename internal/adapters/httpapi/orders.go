package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/application/order/commands"
	"github.com/atorres/orderhub/internal/application/order/queries"
	"github.com/atorres/orderhub/internal/domain/order"
)

// OrderHandler exposes the order use cases over HTTP. It is a thin
// transport: requests are decoded, dispatched through the mediator, and
// the response envelope's code becomes the HTTP status.
type OrderHandler struct {
	mediator    mediator.Mediator
	maxPageSize int
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(m mediator.Mediator, maxPageSize int) *OrderHandler {
	return &OrderHandler{
		mediator:    m,
		maxPageSize: maxPageSize,
	}
}

// RegisterRoutes mounts the order routes on the router
func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Post("/orders", h.HandleCreateOrder)
	router.Post("/orders/{orderID}/cancel", h.HandleCancelOrder)
	router.Get("/orders/{orderID}", h.HandleGetOrder)
	router.Get("/orders", h.HandleListOrders)
}

type createOrderRequest struct {
	CustomerID  string `json:"customer_id"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
}

// HandleCreateOrder handles POST /orders
func (h *OrderHandler) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// A malformed or missing customer id becomes the nil UUID and is
	// rejected by the command's validation rules, not by the transport
	customerID, _ := uuid.Parse(body.CustomerID)

	cmd := commands.NewCreateOrderCommand(customerID, body.Description, body.AmountCents)

	response, err := mediator.Send[mediator.Response[*order.Order]](r.Context(), h.mediator, cmd)
	if err != nil {
		writeDispatchError(w, err)
		return
	}

	writeJSON(w, response.Code, response)
}

// HandleCancelOrder handles POST /orders/{orderID}/cancel
func (h *OrderHandler) HandleCancelOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := uuid.Parse(chi.URLParam(r, "orderID"))

	cmd := commands.NewCancelOrderCommand(orderID)

	response, err := mediator.Send[mediator.Response[*order.Order]](r.Context(), h.mediator, cmd)
	if err != nil {
		writeDispatchError(w, err)
		return
	}

	writeJSON(w, response.Code, response)
}

// HandleGetOrder handles GET /orders/{orderID}
func (h *OrderHandler) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, _ := uuid.Parse(chi.URLParam(r, "orderID"))

	query := queries.NewGetOrderQuery(orderID)

	response, err := mediator.Send[mediator.Response[*order.Order]](r.Context(), h.mediator, query)
	if err != nil {
		writeDispatchError(w, err)
		return
	}

	writeJSON(w, response.Code, response)
}

// HandleListOrders handles GET /orders?customer_id=&page=&page_size=
func (h *OrderHandler) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	customerID, _ := uuid.Parse(r.URL.Query().Get("customer_id"))

	pageNumber := intQueryParam(r, "page", 1)
	pageSize := intQueryParam(r, "page_size", 20)
	if pageSize > h.maxPageSize {
		pageSize = h.maxPageSize
	}

	query := queries.NewListOrdersQuery(customerID, pageNumber, pageSize)

	response, err := mediator.Send[mediator.PagedResponse[order.Order]](r.Context(), h.mediator, query)
	if err != nil {
		writeDispatchError(w, err)
		return
	}

	writeJSON(w, response.Code, response)
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// writeDispatchError maps dispatch-level errors to HTTP. A missing
// handler registration is a deployment defect, so it surfaces as 500
// like any other unexpected error.
func writeDispatchError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
