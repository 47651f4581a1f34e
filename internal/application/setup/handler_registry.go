package setup

import (
	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/application/order/commands"
	"github.com/atorres/orderhub/internal/application/order/queries"
	"github.com/atorres/orderhub/internal/domain/order"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	orderRepo          order.Repository
	validator          mediator.Validator
	emptyPageAsFailure bool
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(orderRepo order.Repository, validator mediator.Validator, emptyPageAsFailure bool) *HandlerRegistry {
	return &HandlerRegistry{
		orderRepo:          orderRepo,
		validator:          validator,
		emptyPageAsFailure: emptyPageAsFailure,
	}
}

// RegisterOrderHandlers registers all order command and query handlers
// with the mediator:
//   - CreateOrderCommand → CreateOrderHandler
//   - CancelOrderCommand → CancelOrderHandler
//   - GetOrderQuery → GetOrderHandler
//   - ListOrdersQuery → ListOrdersHandler
//
// Registration happens once at startup; a duplicate registration is a
// wiring bug and surfaces as an error here.
func (r *HandlerRegistry) RegisterOrderHandlers(m mediator.Mediator) error {
	if err := mediator.RegisterHandler(m, commands.NewCreateOrderHandler(r.orderRepo, r.validator)); err != nil {
		return err
	}

	if err := mediator.RegisterHandler(m, commands.NewCancelOrderHandler(r.orderRepo, r.validator)); err != nil {
		return err
	}

	if err := mediator.RegisterHandler(m, queries.NewGetOrderHandler(r.orderRepo, r.validator)); err != nil {
		return err
	}

	if err := mediator.RegisterHandler(m, queries.NewListOrdersHandler(r.orderRepo, r.validator, r.emptyPageAsFailure)); err != nil {
		return err
	}

	return nil
}
