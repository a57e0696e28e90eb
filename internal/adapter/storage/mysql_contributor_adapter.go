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

// MySQLContributorAdapter implements port.ContributorRepository on top of MySQL.
type MySQLContributorAdapter struct {
	db *sql.DB
}

var _ port.ContributorRepository = (*MySQLContributorAdapter)(nil)

func NewMySQLContributorAdapter(db *sql.DB) *MySQLContributorAdapter {
	return &MySQLContributorAdapter{db: db}
}

func (m *MySQLContributorAdapter) GetByID(ctx context.Context, id int64) (domain.Contributor, error) {
	var c domain.Contributor
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, email, created_at, updated_at
		FROM contributors WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Contributor{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("query contributor: %w", err)
	}
	return c, nil
}

func (m *MySQLContributorAdapter) List(ctx context.Context) ([]domain.Contributor, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, email, created_at, updated_at
		FROM contributors ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query contributors: %w", err)
	}
	defer rows.Close()

	var result []domain.Contributor
	for rows.Next() {
		var c domain.Contributor
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contributor: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (m *MySQLContributorAdapter) Create(ctx context.Context, c domain.Contributor) (domain.Contributor, error) {
	now := time.Now().UTC().Truncate(time.Second)
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := m.db.ExecContext(ctx, `
		INSERT INTO contributors (name, email, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		c.Name, c.Email, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("insert contributor: %w", err)
	}

	c.ID, err = res.LastInsertId()
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("contributor id: %w", err)
	}
	return c, nil
}

func (m *MySQLContributorAdapter) Update(ctx context.Context, c domain.Contributor) (domain.Contributor, error) {
	existing, err := m.GetByID(ctx, c.ID)
	if err != nil {
		return domain.Contributor{}, err
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = m.db.ExecContext(ctx, `
		UPDATE contributors SET name = ?, email = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Email, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return domain.Contributor{}, fmt.Errorf("update contributor: %w", err)
	}
	return c, nil
}

func (m *MySQLContributorAdapter) Delete(ctx context.Context, id int64) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM contributors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contributor: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
