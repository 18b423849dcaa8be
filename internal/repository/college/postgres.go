package college

import (
	"context"
	"encoding/json"
	"errors"

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

const collegeColumns = `id::text, name, location, description, icon, image, cafeterias, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.College, error) {
	const q = `
SELECT ` + collegeColumns + `
FROM colleges
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.College
	for rows.Next() {
		c, err := scanCollege(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.College, error) {
	const q = `
SELECT ` + collegeColumns + `
FROM colleges
WHERE id = $1
LIMIT 1
`
	c, err := scanCollege(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.College) (*domain.College, error) {
	cafJSON, err := json.Marshal(c.Cafeterias)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO colleges (name, location, description, icon, image, cafeterias)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + collegeColumns + `
`
	out, err := scanCollege(r.pool.QueryRow(ctx, q, c.Name, c.Location, c.Description, c.Icon, c.Image, cafJSON))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func (r *postgresRepo) Update(ctx context.Context, c domain.College) (*domain.College, error) {
	cafJSON, err := json.Marshal(c.Cafeterias)
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE colleges
SET name = $2,
    location = $3,
    description = $4,
    icon = $5,
    image = $6,
    cafeterias = $7
WHERE id = $1
RETURNING ` + collegeColumns + `
`
	out, err := scanCollege(r.pool.QueryRow(ctx, q, c.ID, c.Name, c.Location, c.Description, c.Icon, c.Image, cafJSON))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return out, nil
}

func scanCollege(row pgx.Row) (*domain.College, error) {
	var c domain.College
	var cafJSON []byte
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Location,
		&c.Description,
		&c.Icon,
		&c.Image,
		&cafJSON,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(cafJSON) > 0 {
		if err := json.Unmarshal(cafJSON, &c.Cafeterias); err != nil {
			return nil, err
		}
	}
	if c.Cafeterias == nil {
		c.Cafeterias = []string{}
	}
	return &c, nil
}
