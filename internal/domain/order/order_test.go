package order_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atorres/orderhub/internal/domain/order"
)

func TestNewOrder(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()

	o, err := order.NewOrder(id, customerID, "two widgets", 1999)

	require.NoError(t, err)
	assert.Equal(t, id, o.ID)
	assert.Equal(t, customerID, o.CustomerID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestNewOrder_RejectsInvalidArguments(t *testing.T) {
	_, err := order.NewOrder(uuid.Nil, uuid.New(), "x", 100)
	assert.Error(t, err)

	_, err = order.NewOrder(uuid.New(), uuid.Nil, "x", 100)
	assert.Error(t, err)

	_, err = order.NewOrder(uuid.New(), uuid.New(), "x", 0)
	assert.Error(t, err)

	_, err = order.NewOrder(uuid.New(), uuid.New(), "x", -5)
	assert.Error(t, err)
}

func TestOrder_Cancel(t *testing.T) {
	o, err := order.NewOrder(uuid.New(), uuid.New(), "two widgets", 1999)
	require.NoError(t, err)

	require.NoError(t, o.Cancel())
	assert.True(t, o.IsCancelled())

	// Cancelling twice violates the business rule
	assert.ErrorIs(t, o.Cancel(), order.ErrAlreadyCancelled)
}
