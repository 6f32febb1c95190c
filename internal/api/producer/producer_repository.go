package producer

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

var _ ProducerRepository = (*PostgresProducerRepository)(nil)

type ProducerRepository interface {
	List(ctx context.Context) ([]types.Producer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Producer, error)
	Create(ctx context.Context, params types.CreateProducerParams) (*types.Producer, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpdateProducerParams) (*types.Producer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProducerRepository struct {
	logger *slog.Logger
	pgpool types.DBPool
}

func NewPostgresProducerRepository(pgpool types.DBPool, logger *slog.Logger) *PostgresProducerRepository {
	return &PostgresProducerRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

const producerColumns = "id, name, country, description, price, created_at, updated_at"

func scanProducer(row pgx.Row) (*types.Producer, error) {
	var p types.Producer
	err := row.Scan(&p.ID, &p.Name, &p.Country, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProducerRepository) List(ctx context.Context) ([]types.Producer, error) {
	start := time.Now()
	rows, err := r.pgpool.Query(ctx,
		"SELECT "+producerColumns+" FROM producers ORDER BY created_at")
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}
	defer rows.Close()

	producers := []types.Producer{}
	for rows.Next() {
		p, err := scanProducer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan producer row: %w", err)
		}
		producers = append(producers, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("producer rows iteration failed: %w", err)
	}
	return producers, nil
}

func (r *PostgresProducerRepository) GetByID(ctx context.Context, id uuid.UUID) (*types.Producer, error) {
	p, err := scanProducer(r.pgpool.QueryRow(ctx,
		"SELECT "+producerColumns+" FROM producers WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no producer with id %s: %w", id, types.ErrNotFound)
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to get producer: %w", err)
	}
	return p, nil
}

func (r *PostgresProducerRepository) Create(ctx context.Context, params types.CreateProducerParams) (*types.Producer, error) {
	start := time.Now()
	p, err := scanProducer(r.pgpool.QueryRow(ctx,
		`INSERT INTO producers (name, country, description, price)
         VALUES ($1, $2, $3, $4)
         RETURNING `+producerColumns,
		params.Name, params.Country, params.Description, params.Price))
	metrics.Get().DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to insert producer: %w", err)
	}
	return p, nil
}

func (r *PostgresProducerRepository) Update(ctx context.Context, id uuid.UUID, params types.UpdateProducerParams) (*types.Producer, error) {
	// Partial merge: nil params keep the stored value.
	p, err := scanProducer(r.pgpool.QueryRow(ctx,
		`UPDATE producers SET
            name = COALESCE($2, name),
            country = COALESCE($3, country),
            description = COALESCE($4, description),
            price = COALESCE($5, price),
            updated_at = now()
         WHERE id = $1
         RETURNING `+producerColumns,
		id, params.Name, params.Country, params.Description, params.Price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no producer with id %s: %w", id, types.ErrNotFound)
		}
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return nil, fmt.Errorf("failed to update producer: %w", err)
	}
	return p, nil
}

func (r *PostgresProducerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pgpool.Exec(ctx, "DELETE FROM producers WHERE id = $1", id)
	if err != nil {
		metrics.Get().DbQueryErrorsTotal.Add(ctx, 1)
		return fmt.Errorf("failed to delete producer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no producer with id %s: %w", id, types.ErrNotFound)
	}
	return nil
}
