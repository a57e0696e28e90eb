package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/minhvo/catalog-service/internal/core/domain"
	"github.com/minhvo/catalog-service/internal/port"
)

// MySQLProductAdapter implements port.ProductRepository on top of MySQL.
type MySQLProductAdapter struct {
	db *sql.DB
}

var _ port.ProductRepository = (*MySQLProductAdapter)(nil)

func NewMySQLProductAdapter(db *sql.DB) *MySQLProductAdapter {
	return &MySQLProductAdapter{db: db}
}

func (m *MySQLProductAdapter) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	var p domain.Product
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, description, price_cents, stock, created_at, updated_at
		FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("query product: %w", err)
	}
	return p, nil
}

func (m *MySQLProductAdapter) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, description, price_cents, stock, created_at, updated_at
		FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (m *MySQLProductAdapter) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := m.db.ExecContext(ctx, `
		INSERT INTO products (name, description, price_cents, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.PriceCents, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return domain.Product{}, fmt.Errorf("product id: %w", err)
	}
	return p, nil
}

func (m *MySQLProductAdapter) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	existing, err := m.GetByID(ctx, p.ID)
	if err != nil {
		return domain.Product{}, err
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = m.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, description = ?, price_cents = ?, stock = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Description, p.PriceCents, p.Stock, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (m *MySQLProductAdapter) Delete(ctx context.Context, id int64) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
