package persistence_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atorres/orderhub/internal/adapters/persistence"
	"github.com/atorres/orderhub/internal/domain/order"
	"github.com/atorres/orderhub/test/helpers"
)

func TestOrderRepository_AddAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOrderRepository(db)

	o, err := order.NewOrder(uuid.New(), uuid.New(), "two widgets", 1999)
	require.NoError(t, err)

	// Act - Add
	err = repo.Add(context.Background(), o)

	// Assert
	require.NoError(t, err)

	// Act - FindByID
	found, err := repo.FindByID(context.Background(), o.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, o.ID, found.ID)
	assert.Equal(t, o.CustomerID, found.CustomerID)
	assert.Equal(t, o.Description, found.Description)
	assert.Equal(t, o.AmountCents, found.AmountCents)
	assert.Equal(t, order.StatusPending, found.Status)
}

func TestOrderRepository_AddIsUpsert(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOrderRepository(db)

	o, err := order.NewOrder(uuid.New(), uuid.New(), "two widgets", 1999)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), o))

	// Act - save again after a state change
	require.NoError(t, o.Cancel())
	require.NoError(t, repo.Add(context.Background(), o))

	// Assert
	found, err := repo.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, found.Status)
}

func TestOrderRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOrderRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), uuid.New())

	// Assert
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestOrderRepository_FindPage(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOrderRepository(db)

	customerID := uuid.New()
	for i := 0; i < 25; i++ {
		o, err := order.NewOrder(uuid.New(), customerID, fmt.Sprintf("order %d", i), 100)
		require.NoError(t, err)
		// Spread creation times so newest-first ordering is deterministic
		o.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Add(context.Background(), o))
	}

	// An order for another customer must not show up in filtered pages
	other, err := order.NewOrder(uuid.New(), uuid.New(), "foreign order", 100)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), other))

	// Act - first page filtered by customer
	page, totalCount, err := repo.FindPage(context.Background(), customerID, 1, 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(25), totalCount)
	require.Len(t, page, 10)
	assert.Equal(t, "order 24", page[0].Description)

	// Act - last page is partial
	page, totalCount, err = repo.FindPage(context.Background(), customerID, 3, 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(25), totalCount)
	assert.Len(t, page, 5)
}

func TestOrderRepository_FindPageUnfiltered(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormOrderRepository(db)

	for i := 0; i < 3; i++ {
		o, err := order.NewOrder(uuid.New(), uuid.New(), fmt.Sprintf("order %d", i), 100)
		require.NoError(t, err)
		require.NoError(t, repo.Add(context.Background(), o))
	}

	// Act - uuid.Nil means no customer filter
	page, totalCount, err := repo.FindPage(context.Background(), uuid.Nil, 1, 10)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(3), totalCount)
	assert.Len(t, page, 3)
}
