package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atorres/orderhub/internal/application/order/commands"
	"github.com/atorres/orderhub/internal/application/setup"
	"github.com/atorres/orderhub/internal/domain/order"
	"github.com/atorres/orderhub/test/helpers"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(uuid.New(), uuid.New(), "two widgets", 1999)
	require.NoError(t, err)
	return o
}

func TestCancelOrderHandler_OrderNotFound(t *testing.T) {
	// Arrange - the mock's default lookup misses
	repo := helpers.NewMockOrderRepository()
	handler := commands.NewCancelOrderHandler(repo, setup.NewRequestValidator())

	// Act
	response, err := handler.Handle(context.Background(), commands.NewCancelOrderCommand(uuid.New()))

	// Assert
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, 404, response.Code)
	require.Len(t, response.Notifications, 1)
	assert.Equal(t, "Order not found.", response.Notifications[0].Message)
}

func TestCancelOrderHandler_AlreadyCancelled(t *testing.T) {
	// Arrange
	existing := pendingOrder(t)
	require.NoError(t, existing.Cancel())

	repo := helpers.NewMockOrderRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*order.Order, error) {
		return existing, nil
	}
	handler := commands.NewCancelOrderHandler(repo, setup.NewRequestValidator())

	// Act
	response, err := handler.Handle(context.Background(), commands.NewCancelOrderCommand(existing.ID))

	// Assert
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, 409, response.Code)
	require.Len(t, response.Notifications, 1)
	assert.Equal(t, "Order is already cancelled.", response.Notifications[0].Message)
	assert.Zero(t, repo.AddCalls)
}

func TestCancelOrderHandler_Success(t *testing.T) {
	// Arrange
	existing := pendingOrder(t)

	repo := helpers.NewMockOrderRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*order.Order, error) {
		return existing, nil
	}
	handler := commands.NewCancelOrderHandler(repo, setup.NewRequestValidator())

	// Act
	response, err := handler.Handle(context.Background(), commands.NewCancelOrderCommand(existing.ID))

	// Assert
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, order.StatusCancelled, response.Data.Status)
	assert.Equal(t, 1, repo.AddCalls)
}

func TestCancelOrderHandler_RejectsEmptyOrderID(t *testing.T) {
	// Arrange
	repo := helpers.NewMockOrderRepository()
	handler := commands.NewCancelOrderHandler(repo, setup.NewRequestValidator())

	// Act
	response, err := handler.Handle(context.Background(), commands.NewCancelOrderCommand(uuid.Nil))

	// Assert
	require.NoError(t, err)
	assert.False(t, response.Success)
	assert.Equal(t, 400, response.Code)
	assert.Zero(t, repo.FindByIDCalls)
}
