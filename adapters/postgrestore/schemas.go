package postgrestore

import (
	"github.com/ddd-patterns/backend/domain/checkout"
	"github.com/ddd-patterns/backend/domain/customer"
	"github.com/ddd-patterns/backend/domain/product"
)

type CustomerSchema struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name"`
	Street       string `gorm:"column:street"`
	Number       int    `gorm:"column:number"`
	Zipcode      string `gorm:"column:zipcode"`
	City         string `gorm:"column:city"`
	Active       bool   `gorm:"column:active"`
	RewardPoints int    `gorm:"column:reward_points"`
}

func (CustomerSchema) TableName() string {
	return "customers"
}

func NewCustomerSchema(c *customer.Customer) CustomerSchema {
	s := CustomerSchema{
		ID:           c.ID,
		Name:         c.Name,
		Active:       c.Active,
		RewardPoints: c.RewardPoints,
	}

	if c.Address != nil {
		s.Street = c.Address.Street
		s.Number = c.Address.Number
		s.Zipcode = c.Address.Zipcode
		s.City = c.Address.City
	}

	return s
}

// columns lists every mutable column, including zero values that
// gorm's struct Updates would skip.
func (s CustomerSchema) columns() map[string]interface{} {
	return map[string]interface{}{
		"name":          s.Name,
		"street":        s.Street,
		"number":        s.Number,
		"zipcode":       s.Zipcode,
		"city":          s.City,
		"active":        s.Active,
		"reward_points": s.RewardPoints,
	}
}

func (s *CustomerSchema) ToDomainCustomer() *customer.Customer {
	if s == nil {
		return nil
	}

	c := &customer.Customer{
		ID:           s.ID,
		Name:         s.Name,
		Active:       s.Active,
		RewardPoints: s.RewardPoints,
	}

	if s.Street != "" {
		c.Address = &customer.Address{
			Street:  s.Street,
			Number:  s.Number,
			City:    s.City,
			Zipcode: s.Zipcode,
		}
	}

	return c
}

type OrderSchema struct {
	ID         string  `gorm:"column:id;primaryKey"`
	CustomerID string  `gorm:"column:customer_id"`
	Total      float64 `gorm:"column:total"`

	Items []OrderItemSchema `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderSchema) TableName() string {
	return "orders"
}

type OrderItemSchema struct {
	ID        string  `gorm:"column:id;primaryKey"`
	OrderID   string  `gorm:"column:order_id"`
	Position  int     `gorm:"column:position"`
	ProductID string  `gorm:"column:product_id"`
	Name      string  `gorm:"column:name"`
	Quantity  int     `gorm:"column:quantity"`
	Price     float64 `gorm:"column:price"`
}

func (OrderItemSchema) TableName() string {
	return "order_items"
}

func NewOrderSchema(o *checkout.Order) OrderSchema {
	return OrderSchema{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Total:      o.Total(),
		Items:      newOrderItemSchemas(o),
	}
}

func newOrderItemSchemas(o *checkout.Order) []OrderItemSchema {
	items := make([]OrderItemSchema, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemSchema{
			ID:        item.ID,
			OrderID:   o.ID,
			Position:  i,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	return items
}

func (s *OrderSchema) ToDomainOrder() *checkout.Order {
	if s == nil {
		return nil
	}

	items := make([]checkout.OrderItem, len(s.Items))
	for i, item := range s.Items {
		items[i] = checkout.OrderItem{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return &checkout.Order{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      items,
	}
}

type ProductQuerySchema struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
}

func (s ProductQuerySchema) ToDomainProduct() *product.Product {
	return &product.Product{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
	}
}
