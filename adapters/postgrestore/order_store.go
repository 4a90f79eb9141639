package postgrestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/ddd-patterns/backend/domain/checkout"
	"gorm.io/gorm"
)

type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

func (s *OrderStore) Create(ctx context.Context, o *checkout.Order) error {
	orderSchema := NewOrderSchema(o)

	if err := s.db.WithContext(ctx).Create(&orderSchema).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return checkout.ErrAlreadyExists
		}

		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// Update rewrites the order row and replaces its items in one transaction.
func (s *OrderStore) Update(ctx context.Context, o *checkout.Order) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderSchema{}).
			Where("id = ?", o.ID).
			Updates(map[string]interface{}{
				"customer_id": o.CustomerID,
				"total":       o.Total(),
			})
		if result.Error != nil {
			return fmt.Errorf("unexpected error: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return checkout.ErrNotFound
		}

		if err := tx.Where("order_id = ?", o.ID).Delete(&OrderItemSchema{}).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		items := newOrderItemSchemas(o)
		if len(items) == 0 {
			return nil
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}

		return nil
	})
}

func (s *OrderStore) GetByID(ctx context.Context, id string) (*checkout.Order, error) {
	var orderSchema OrderSchema

	err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Where("id = ?", id).
		First(&orderSchema).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, checkout.ErrNotFound
		}

		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	return orderSchema.ToDomainOrder(), nil
}

func (s *OrderStore) List(ctx context.Context) ([]checkout.Order, error) {
	var orderSchemas []OrderSchema

	if err := s.db.WithContext(ctx).
		Preload("Items", orderItemsByPosition).
		Order("id").
		Find(&orderSchemas).Error; err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	orders := make([]checkout.Order, 0, len(orderSchemas))
	for _, orderSchema := range orderSchemas {
		orders = append(orders, *orderSchema.ToDomainOrder())
	}

	return orders, nil
}

// orderItemsByPosition keeps items in the order they were added.
func orderItemsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
