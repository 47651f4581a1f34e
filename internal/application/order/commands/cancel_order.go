package commands

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/domain/order"
)

// CancelOrderCommand - Command to cancel an existing order
type CancelOrderCommand struct {
	mediator.Command

	OrderID uuid.UUID `validate:"required"`
}

// NewCancelOrderCommand creates a new cancel order command
func NewCancelOrderCommand(orderID uuid.UUID) *CancelOrderCommand {
	return &CancelOrderCommand{
		Command: mediator.NewCommand(),
		OrderID: orderID,
	}
}

// CancelOrderHandler - Handles cancel order commands
type CancelOrderHandler struct {
	orders    order.Repository
	validator mediator.Validator
}

// NewCancelOrderHandler creates a new cancel order handler
func NewCancelOrderHandler(orders order.Repository, validator mediator.Validator) *CancelOrderHandler {
	return &CancelOrderHandler{
		orders:    orders,
		validator: validator,
	}
}

// Handle executes the cancel order command
func (h *CancelOrderHandler) Handle(ctx context.Context, cmd *CancelOrderCommand) (mediator.Response[*order.Order], error) {
	workflow := mediator.NewWorkflow()

	if !workflow.ExecuteValidation(ctx, h.validator, cmd) {
		return mediator.Fail[*order.Order](workflow.Notifications()), nil
	}

	existing, err := h.orders.FindByID(ctx, cmd.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			workflow.Notify("Order not found.")
			return mediator.FailWithCode[*order.Order](http.StatusNotFound, workflow.Notifications()), nil
		}
		return mediator.Response[*order.Order]{}, err
	}

	if err := existing.Cancel(); err != nil {
		workflow.Notify("Order is already cancelled.")
		return mediator.FailWithCode[*order.Order](http.StatusConflict, workflow.Notifications()), nil
	}

	if err := h.orders.Add(ctx, existing); err != nil {
		if ctx.Err() != nil {
			return mediator.Response[*order.Order]{}, err
		}
		workflow.Notify("Failed to cancel the order.")
		return mediator.Fail[*order.Order](workflow.Notifications()), nil
	}

	return mediator.OK(existing), nil
}
