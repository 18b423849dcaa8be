package menu

import (
	"context"
	"errors"
	"fmt"

	"quickbite/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const menuColumns = `id::text, name, description, price_cents, category, veg, cafeteria, image, available, created_at`

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.MenuItem, error) {
	q := `
SELECT ` + menuColumns + `
FROM menu_items
WHERE 1=1`
	var args []interface{}
	if f.Cafeteria != "" {
		args = append(args, f.Cafeteria)
		q += fmt.Sprintf(" AND cafeteria = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		q += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if f.Veg != nil {
		args = append(args, *f.Veg)
		q += fmt.Sprintf(" AND veg = $%d", len(args))
	}
	q += " ORDER BY category ASC, name ASC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const q = `
SELECT ` + menuColumns + `
FROM menu_items
WHERE id = $1
LIMIT 1
`
	item, err := scanItem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (name, description, price_cents, category, veg, cafeteria, image, available)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + menuColumns + `
`
	return scanItem(r.pool.QueryRow(ctx, q,
		item.Name,
		item.Description,
		item.PriceCents,
		string(item.Category),
		item.Veg,
		item.Cafeteria,
		item.Image,
		item.Available,
	))
}

func (r *postgresRepo) Update(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
UPDATE menu_items
SET name = $2,
    description = $3,
    price_cents = $4,
    category = $5,
    veg = $6,
    cafeteria = $7,
    image = $8,
    available = $9
WHERE id = $1
RETURNING ` + menuColumns + `
`
	out, err := scanItem(r.pool.QueryRow(ctx, q,
		item.ID,
		item.Name,
		item.Description,
		item.PriceCents,
		string(item.Category),
		item.Veg,
		item.Cafeteria,
		item.Image,
		item.Available,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func scanItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var category string
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.PriceCents,
		&category,
		&item.Veg,
		&item.Cafeteria,
		&item.Image,
		&item.Available,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Category = domain.Category(category)
	return &item, nil
}
