package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines operations for order persistence
type Repository interface {
	// Add persists an order, inserting or updating by ID
	Add(ctx context.Context, o *Order) error

	// FindByID retrieves an order by ID; returns ErrNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindPage retrieves one page of orders, newest first, optionally
	// filtered by customer (uuid.Nil means no filter), along with the
	// total count of matching orders across all pages
	FindPage(ctx context.Context, customerID uuid.UUID, pageNumber, pageSize int) ([]Order, int64, error)
}
