package pack

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

var _ PackRepository = (*PostgresPackRepository)(nil)

type PackRepository interface {
	List(ctx context.Context) ([]types.Pack, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Pack, error)
	Create(ctx context.Context, params types.CreatePackParams) (*types.Pack, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpdatePackParams) (*types.Pack, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresPackRepository struct {
	logger *slog.Logger
	pgpool types.DBPool
}

func NewPostgresPackRepository(pgpool types.DBPool, logger *slog.Logger) *PostgresPackRepository {
	return &PostgresPackRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

const packColumns = "id, name, size, description, price, created_at, updated_at"

func scanPack(row pgx.Row) (*types.Pack, error) {
	var p types.Pack
	err := row.Scan(&p.ID, &p.Name, &p.Size, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPackRepository) List(ctx context.Context) ([]types.Pack, error) {
	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		"SELECT "+packColumns+" FROM packs ORDER BY created_at")
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to list packs: %w", err)
	}
	defer rows.Close()

	packs := []types.Pack{}
	for rows.Next() {
		p, err := scanPack(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pack row: %w", err)
		}
		packs = append(packs, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pack rows iteration failed: %w", err)
	}
	return packs, nil
}

func (r *PostgresPackRepository) GetByID(ctx context.Context, id uuid.UUID) (*types.Pack, error) {
	p, err := scanPack(r.pgpool.QueryRow(ctx,
		"SELECT "+packColumns+" FROM packs WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no pack with id %s: %w", id, types.ErrNotFound)
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to get pack: %w", err)
	}
	return p, nil
}

func (r *PostgresPackRepository) Create(ctx context.Context, params types.CreatePackParams) (*types.Pack, error) {
	start := time.Now()
	p, err := scanPack(r.pgpool.QueryRow(ctx,
		`INSERT INTO packs (name, size, description, price)
         VALUES ($1, $2, $3, $4)
         RETURNING `+packColumns,
		params.Name, params.Size, params.Description, params.Price))
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to insert pack: %w", err)
	}
	return p, nil
}

func (r *PostgresPackRepository) Update(ctx context.Context, id uuid.UUID, params types.UpdatePackParams) (*types.Pack, error) {
	p, err := scanPack(r.pgpool.QueryRow(ctx,
		`UPDATE packs SET
            name = COALESCE($2, name),
            size = COALESCE($3, size),
            description = COALESCE($4, description),
            price = COALESCE($5, price),
            updated_at = now()
         WHERE id = $1
         RETURNING `+packColumns,
		id, params.Name, params.Size, params.Description, params.Price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no pack with id %s: %w", id, types.ErrNotFound)
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to update pack: %w", err)
	}
	return p, nil
}

func (r *PostgresPackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, "DELETE FROM packs WHERE id = $1", id)
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return fmt.Errorf("failed to delete pack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no pack with id %s: %w", id, types.ErrNotFound)
	}
	return nil
}
