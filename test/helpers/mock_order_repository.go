package helpers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/atorres/orderhub/internal/domain/order"
)

// MockOrderRepository is a test double for order.Repository. Behavior
// is overridden per test through the function fields; call counters
// track whether business logic reached the repository at all.
type MockOrderRepository struct {
	mu sync.Mutex

	AddFunc      func(ctx context.Context, o *order.Order) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindPageFunc func(ctx context.Context, customerID uuid.UUID, pageNumber, pageSize int) ([]order.Order, int64, error)

	AddCalls      int
	FindByIDCalls int
	FindPageCalls int
}

// NewMockOrderRepository creates a mock whose defaults behave like an
// empty store: lookups miss and writes succeed.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

// Add implements order.Repository
func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	m.mu.Lock()
	m.AddCalls++
	m.mu.Unlock()

	if m.AddFunc != nil {
		return m.AddFunc(ctx, o)
	}
	return nil
}

// FindByID implements order.Repository
func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	m.mu.Lock()
	m.FindByIDCalls++
	m.mu.Unlock()

	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, order.ErrNotFound
}

// FindPage implements order.Repository
func (m *MockOrderRepository) FindPage(ctx context.Context, customerID uuid.UUID, pageNumber, pageSize int) ([]order.Order, int64, error) {
	m.mu.Lock()
	m.FindPageCalls++
	m.mu.Unlock()

	if m.FindPageFunc != nil {
		return m.FindPageFunc(ctx, customerID, pageNumber, pageSize)
	}
	return nil, 0, nil
}

// Ensure MockOrderRepository implements the order.Repository interface
var _ order.Repository = (*MockOrderRepository)(nil)
