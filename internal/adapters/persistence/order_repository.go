package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/atorres/orderhub/internal/domain/order"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add persists an order to the database
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) error {
	model := r.entityToModel(o)

	// Upsert: create or update
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save order: %w", result.Error)
	}

	return nil
}

// FindByID retrieves an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model OrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: %s", order.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find order: %w", result.Error)
	}

	return r.modelToEntity(&model)
}

// FindPage retrieves one page of orders, newest first, optionally
// filtered by customer, along with the total count of matching rows
func (r *GormOrderRepository) FindPage(ctx context.Context, customerID uuid.UUID, pageNumber, pageSize int) ([]order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&OrderModel{})
	if customerID != uuid.Nil {
		query = query.Where("customer_id = ?", customerID.String())
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var models []OrderModel
	result := query.
		Order("created_at DESC, id").
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&models)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", result.Error)
	}

	orders := make([]order.Order, 0, len(models))
	for _, model := range models {
		entity, err := r.modelToEntity(&model)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to convert order %s: %w", model.ID, err)
		}
		orders = append(orders, *entity)
	}

	return orders, totalCount, nil
}

// entityToModel converts domain entity to database model
func (r *GormOrderRepository) entityToModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID.String(),
		Description: o.Description,
		AmountCents: o.AmountCents,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
	}
}

// modelToEntity converts database model to domain entity
func (r *GormOrderRepository) modelToEntity(model *OrderModel) (*order.Order, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q: %w", model.ID, err)
	}

	customerID, err := uuid.Parse(model.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id %q: %w", model.CustomerID, err)
	}

	return &order.Order{
		ID:          id,
		CustomerID:  customerID,
		Description: model.Description,
		AmountCents: model.AmountCents,
		Status:      order.Status(model.Status),
		CreatedAt:   model.CreatedAt,
	}, nil
}

// Interface guard
var _ order.Repository = (*GormOrderRepository)(nil)
