package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an order
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCancelled Status = "CANCELLED"
)

var (
	// ErrNotFound is returned by repositories when no order matches
	ErrNotFound = errors.New("order not found")

	// ErrAlreadyCancelled is returned when cancelling a cancelled order
	ErrAlreadyCancelled = errors.New("order is already cancelled")
)

// Order is a customer order. State transitions go through methods so an
// order can never hold an invalid combination of fields.
type Order struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amount_cents"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewOrder creates a pending order. The id comes from the command that
// requested the creation, so retried commands keep a stable identity.
func NewOrder(id, customerID uuid.UUID, description string, amountCents int64) (*Order, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("customer id cannot be empty")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("order amount must be positive, got %d", amountCents)
	}

	return &Order{
		ID:          id,
		CustomerID:  customerID,
		Description: description,
		AmountCents: amountCents,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Cancel transitions the order to cancelled. Cancelling twice is a
// business-rule violation.
func (o *Order) Cancel() error {
	if o.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	o.Status = StatusCancelled
	return nil
}

// IsCancelled reports whether the order was cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}
