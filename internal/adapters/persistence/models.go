package persistence

import "time"

// OrderModel is the database representation of an order
type OrderModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	CustomerID  string    `gorm:"size:36;index"`
	Description string    `gorm:"size:500"`
	AmountCents int64     `gorm:"not null"`
	Status      string    `gorm:"size:20;not null;index"`
	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}
