package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/domain/order"
)

// CreateOrderCommand - Command to create a new order
type CreateOrderCommand struct {
	mediator.Command

	CustomerID  uuid.UUID `validate:"required"`
	Description string    `validate:"required,max=500"`
	AmountCents int64     `validate:"required,gt=0"`
}

// NewCreateOrderCommand creates the command with a fresh identity; the
// identity becomes the ID of the created order.
func NewCreateOrderCommand(customerID uuid.UUID, description string, amountCents int64) *CreateOrderCommand {
	return &CreateOrderCommand{
		Command:     mediator.NewCommand(),
		CustomerID:  customerID,
		Description: description,
		AmountCents: amountCents,
	}
}

// CreateOrderHandler - Handles create order commands
type CreateOrderHandler struct {
	orders    order.Repository
	validator mediator.Validator
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(orders order.Repository, validator mediator.Validator) *CreateOrderHandler {
	return &CreateOrderHandler{
		orders:    orders,
		validator: validator,
	}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd *CreateOrderCommand) (mediator.Response[*order.Order], error) {
	workflow := mediator.NewWorkflow()

	if !workflow.ExecuteValidation(ctx, h.validator, cmd) {
		return mediator.Fail[*order.Order](workflow.Notifications()), nil
	}

	newOrder, err := order.NewOrder(cmd.CommandID(), cmd.CustomerID, cmd.Description, cmd.AmountCents)
	if err != nil {
		workflow.Notify(err.Error())
		return mediator.Fail[*order.Order](workflow.Notifications()), nil
	}

	if err := h.orders.Add(ctx, newOrder); err != nil {
		if ctx.Err() != nil {
			// Cancelled mid-write; propagate instead of reporting a partial result
			return mediator.Response[*order.Order]{}, err
		}
		workflow.Notify("Failed to create the order.")
		return mediator.Fail[*order.Order](workflow.Notifications()), nil
	}

	return mediator.OK(newOrder), nil
}
