package queries

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/domain/order"
)

// GetOrderQuery - Query to retrieve a single order by ID
type GetOrderQuery struct {
	mediator.Query

	OrderID uuid.UUID `validate:"required"`
}

// NewGetOrderQuery creates a new get order query
func NewGetOrderQuery(orderID uuid.UUID) *GetOrderQuery {
	return &GetOrderQuery{OrderID: orderID}
}

// GetOrderHandler - Handles get order queries
type GetOrderHandler struct {
	orders    order.Repository
	validator mediator.Validator
}

// NewGetOrderHandler creates a new get order query handler
func NewGetOrderHandler(orders order.Repository, validator mediator.Validator) *GetOrderHandler {
	return &GetOrderHandler{
		orders:    orders,
		validator: validator,
	}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(ctx context.Context, query *GetOrderQuery) (mediator.Response[*order.Order], error) {
	workflow := mediator.NewWorkflow()

	if !workflow.ExecuteValidation(ctx, h.validator, query) {
		return mediator.Fail[*order.Order](workflow.Notifications()), nil
	}

	found, err := h.orders.FindByID(ctx, query.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			workflow.Notify("Order not found.")
			return mediator.FailWithCode[*order.Order](http.StatusNotFound, workflow.Notifications()), nil
		}
		return mediator.Response[*order.Order]{}, err
	}

	return mediator.OK(found), nil
}
