package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"donatehub/internal/domain"
)

// CategoryRepositoryPG serves the category reference data from PostgreSQL.
type CategoryRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepositoryPG.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepositoryPG {
	return &CategoryRepositoryPG{pool: pool}
}

// List returns all categories in id order.
func (r *CategoryRepositoryPG) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, icon, color
FROM categories
ORDER BY id ASC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Seed inserts the given categories when the table is empty.
func (r *CategoryRepositoryPG) Seed(ctx context.Context, categories []domain.Category) error {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM categories;`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, c := range categories {
		if _, err := r.pool.Exec(ctx, `
INSERT INTO categories (id, name, icon, color)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING;
`, c.ID, c.Name, c.Icon, c.Color); err != nil {
			return err
		}
	}
	return nil
}

var _ domain.CategoryRepository = (*CategoryRepositoryPG)(nil)
