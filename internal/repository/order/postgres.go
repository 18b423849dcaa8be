package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quickbite/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const orderColumns = `id::text, user_id::text, items, college, cafeteria, total_cents, status, notes, order_token, created_at, completed_at`

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	itemsJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO orders (user_id, items, college, cafeteria, total_cents, status, notes, order_token)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + orderColumns + `
`
	out, err := scanOrder(r.pool.QueryRow(ctx, q,
		o.UserID,
		itemsJSON,
		o.College,
		o.Cafeteria,
		o.TotalCents,
		string(o.Status),
		o.Notes,
		o.Token,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
LIMIT 1
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.Status, completedAt *time.Time) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $2,
    completed_at = COALESCE($3, completed_at)
WHERE id = $1
RETURNING ` + orderColumns + `
`
	o, err := scanOrder(r.pool.QueryRow(ctx, q, id, string(status), completedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON []byte
	var status string
	if err := row.Scan(
		&o.ID,
		&o.UserID,
		&itemsJSON,
		&o.College,
		&o.Cafeteria,
		&o.TotalCents,
		&status,
		&o.Notes,
		&o.Token,
		&o.CreatedAt,
		&o.CompletedAt,
	); err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Lines); err != nil {
			return nil, err
		}
	}
	return &o, nil
}
