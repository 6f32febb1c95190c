package coffee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/beanwise/coffee-api/app/observability/metrics"
	"github.com/beanwise/coffee-api/internal/types"
)

var _ CoffeeRepository = (*PostgresCoffeeRepository)(nil)

type CoffeeRepository interface {
	List(ctx context.Context) ([]types.Coffee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Coffee, error)
	Create(ctx context.Context, params types.CreateCoffeeParams) (*types.Coffee, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpdateCoffeeParams) (*types.Coffee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCoffeeRepository struct {
	logger *slog.Logger
	pgpool types.DBPool
}

func NewPostgresCoffeeRepository(pgpool types.DBPool, logger *slog.Logger) *PostgresCoffeeRepository {
	return &PostgresCoffeeRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

const coffeeColumns = "id, name, origin, roast, description, price, created_at, updated_at"

func scanCoffee(row pgx.Row) (*types.Coffee, error) {
	var c types.Coffee
	err := row.Scan(&c.ID, &c.Name, &c.Origin, &c.Roast, &c.Description, &c.Price, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCoffeeRepository) List(ctx context.Context) ([]types.Coffee, error) {
	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		"SELECT "+coffeeColumns+" FROM coffees ORDER BY created_at")
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to list coffees: %w", err)
	}
	defer rows.Close()

	coffees := []types.Coffee{}
	for rows.Next() {
		c, err := scanCoffee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coffee row: %w", err)
		}
		coffees = append(coffees, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("coffee rows iteration failed: %w", err)
	}
	return coffees, nil
}

func (r *PostgresCoffeeRepository) GetByID(ctx context.Context, id uuid.UUID) (*types.Coffee, error) {
	c, err := scanCoffee(r.pgpool.QueryRow(ctx,
		"SELECT "+coffeeColumns+" FROM coffees WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no coffee with id %s: %w", id, types.ErrNotFound)
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to get coffee: %w", err)
	}
	return c, nil
}

func (r *PostgresCoffeeRepository) Create(ctx context.Context, params types.CreateCoffeeParams) (*types.Coffee, error) {
	start := time.Now()
	c, err := scanCoffee(r.pgpool.QueryRow(ctx,
		`INSERT INTO coffees (name, origin, roast, description, price)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING `+coffeeColumns,
		params.Name, params.Origin, params.Roast, params.Description, params.Price))
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to insert coffee: %w", err)
	}
	return c, nil
}

func (r *PostgresCoffeeRepository) Update(ctx context.Context, id uuid.UUID, params types.UpdateCoffeeParams) (*types.Coffee, error) {
	c, err := scanCoffee(r.pgpool.QueryRow(ctx,
		`UPDATE coffees SET
            name = COALESCE($2, name),
            origin = COALESCE($3, origin),
            roast = COALESCE($4, roast),
            description = COALESCE($5, description),
            price = COALESCE($6, price),
            updated_at = now()
         WHERE id = $1
         RETURNING `+coffeeColumns,
		id, params.Name, params.Origin, params.Roast, params.Description, params.Price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no coffee with id %s: %w", id, types.ErrNotFound)
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to update coffee: %w", err)
	}
	return c, nil
}

func (r *PostgresCoffeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, "DELETE FROM coffees WHERE id = $1", id)
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return fmt.Errorf("failed to delete coffee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no coffee with id %s: %w", id, types.ErrNotFound)
	}
	return nil
}
