package queries

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/atorres/orderhub/internal/application/mediator"
	"github.com/atorres/orderhub/internal/domain/order"
)

// ListOrdersQuery - Paged query to list orders, newest first
type ListOrdersQuery struct {
	mediator.PagedQuery

	// CustomerID filters by customer; uuid.Nil lists all orders
	CustomerID uuid.UUID
}

// NewListOrdersQuery creates a new list orders query for one page
func NewListOrdersQuery(customerID uuid.UUID, pageNumber, pageSize int) *ListOrdersQuery {
	return &ListOrdersQuery{
		PagedQuery: mediator.NewPagedQuery(pageNumber, pageSize),
		CustomerID: customerID,
	}
}

// ListOrdersHandler - Handles list orders queries. emptyPageAsFailure
// selects the policy for a result set with no matching orders: report
// it as a 404 failure, or as a success with an empty page.
type ListOrdersHandler struct {
	orders             order.Repository
	validator          mediator.Validator
	emptyPageAsFailure bool
}

// NewListOrdersHandler creates a new list orders query handler
func NewListOrdersHandler(orders order.Repository, validator mediator.Validator, emptyPageAsFailure bool) *ListOrdersHandler {
	return &ListOrdersHandler{
		orders:             orders,
		validator:          validator,
		emptyPageAsFailure: emptyPageAsFailure,
	}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, query *ListOrdersQuery) (mediator.PagedResponse[order.Order], error) {
	workflow := mediator.NewWorkflow()

	if !workflow.ExecuteValidation(ctx, h.validator, query) {
		return mediator.PagedFail[order.Order](workflow.Notifications()), nil
	}

	items, totalCount, err := h.orders.FindPage(ctx, query.CustomerID, query.PageNumber, query.PageSize)
	if err != nil {
		return mediator.PagedResponse[order.Order]{}, err
	}

	if totalCount == 0 && h.emptyPageAsFailure {
		workflow.Notify("No orders found.")
		return mediator.PagedFailWithCode[order.Order](http.StatusNotFound, workflow.Notifications()), nil
	}

	return mediator.PagedOK(items, totalCount, query.PageNumber, query.PageSize), nil
}
