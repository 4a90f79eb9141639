package postgrestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ddd-patterns/backend/domain/product"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type ProductStore struct {
	db *sqlx.DB
}

func NewProductStore(db *sqlx.DB) *ProductStore {
	return &ProductStore{db}
}

func (s *ProductStore) Create(ctx context.Context, p *product.Product) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products(id,name,description,price) VALUES ($1,$2,$3,$4)`,
		p.ID, p.Name, p.Description, p.Price)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return product.ErrAlreadyExists
		}

		return fmt.Errorf("cannot save the product: %w", err)
	}

	return nil
}

func (s *ProductStore) Update(ctx context.Context, p *product.Product) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE products SET name=$2, description=$3, price=$4 WHERE id=$1`,
		p.ID, p.Name, p.Description, p.Price)
	if err != nil {
		return fmt.Errorf("cannot update the product '%s': %w", p.ID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("cannot update the product '%s': %w", p.ID, err)
	}

	if n == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*product.Product, error) {
	var result ProductQuerySchema

	err := s.db.GetContext(ctx, &result, `SELECT id,name,description,price FROM products WHERE id=$1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("cannot get the product '%s': %w", id, err)
	}

	return result.ToDomainProduct(), nil
}

func (s *ProductStore) List(ctx context.Context) ([]product.Product, error) {
	var results []ProductQuerySchema

	if err := s.db.SelectContext(ctx, &results, `SELECT id,name,description,price FROM products ORDER BY id`); err != nil {
		return nil, fmt.Errorf("cannot list products: %w", err)
	}

	products := make([]product.Product, 0, len(results))
	for _, result := range results {
		products = append(products, *result.ToDomainProduct())
	}

	return products, nil
}
