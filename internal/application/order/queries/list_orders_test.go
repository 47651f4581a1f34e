package queries_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atorres/orderhub/internal/application/order/queries"
	"github.com/atorres/orderhub/internal/application/setup"
	"github.com/atorres/orderhub/internal/domain/order"
	"github.com/atorres/orderhub/test/helpers"
)

func TestListOrdersHandler_EmptyResultAsFailure(t *testing.T) {
	// Arrange - the mock's default page is empty
	repo := helpers.NewMockOrderRepository()
	handler := queries.NewListOrdersHandler(repo, setup.NewRequestValidator(), true)

	// Act
	response, err := handler.Handle(context.Background(), queries.NewListOrdersQuery(uuid.Nil, 1, 20))

	// Assert
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, 404, response.Code)
	require.Len(t, response.Notifications, 1)
	assert.Equal(t, "No orders found.", response.Notifications[0].Message)
}

func TestListOrdersHandler_EmptyResultAsSuccess(t *testing.T) {
	// Arrange - same store, opposite policy
	repo := helpers.NewMockOrderRepository()
	handler := queries.NewListOrdersHandler(repo, setup.NewRequestValidator(), false)

	// Act
	response, err := handler.Handle(context.Background(), queries.NewListOrdersQuery(uuid.Nil, 1, 20))

	// Assert
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Empty(t, response.Data)
	assert.Zero(t, response.TotalCount)
	assert.Zero(t, response.TotalPages)
}

func TestListOrdersHandler_ReturnsPageWithTotals(t *testing.T) {
	// Arrange
	repo := helpers.NewMockOrderRepository()
	repo.FindPageFunc = func(ctx context.Context, customerID uuid.UUID, pageNumber, pageSize int) ([]order.Order, int64, error) {
		page := make([]order.Order, pageSize)
		return page, 101, nil
	}
	handler := queries.NewListOrdersHandler(repo, setup.NewRequestValidator(), true)

	// Act
	response, err := handler.Handle(context.Background(), queries.NewListOrdersQuery(uuid.Nil, 2, 20))

	// Assert
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Len(t, response.Data, 20)
	assert.Equal(t, int64(101), response.TotalCount)
	assert.Equal(t, 2, response.PageNumber)
	assert.Equal(t, 20, response.PageSize)
	assert.Equal(t, 6, response.TotalPages)
}

func TestListOrdersHandler_RejectsInvalidPageArguments(t *testing.T) {
	// Arrange
	repo := helpers.NewMockOrderRepository()
	handler := queries.NewListOrdersHandler(repo, setup.NewRequestValidator(), true)

	// Act
	response, err := handler.Handle(context.Background(), queries.NewListOrdersQuery(uuid.Nil, 0, 0))

	// Assert
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, 400, response.Code)
	assert.Len(t, response.Notifications, 2)
	assert.Zero(t, repo.FindPageCalls)
}
