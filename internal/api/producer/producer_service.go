package producer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/beanwise/coffee-api/internal/types"
)

var _ ProducerService = (*ProducerServiceImpl)(nil)

type ProducerService interface {
	List(ctx context.Context) ([]types.Producer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Producer, error)
	Create(ctx context.Context, params types.CreateProducerParams) (*types.Producer, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpdateProducerParams) (*types.Producer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProducerServiceImpl struct {
	logger *slog.Logger
	repo   ProducerRepository
}

func NewProducerService(repo ProducerRepository, logger *slog.Logger) *ProducerServiceImpl {
	return &ProducerServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ProducerServiceImpl) List(ctx context.Context) ([]types.Producer, error) {
	return s.repo.List(ctx)
}

func (s *ProducerServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*types.Producer, error) {
	ctx, span := otel.Tracer("ProducerService").Start(ctx, "GetByID", trace.WithAttributes(
		attribute.String("producer.id", id.String()),
	))
	defer span.End()

	return s.repo.GetByID(ctx, id)
}

func (s *ProducerServiceImpl) Create(ctx context.Context, params types.CreateProducerParams) (*types.Producer, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("producer name is required: %w", types.ErrValidation)
	}
	return s.repo.Create(ctx, params)
}

func (s *ProducerServiceImpl) Update(ctx context.Context, id uuid.UUID, params types.UpdateProducerParams) (*types.Producer, error) {
	ctx, span := otel.Tracer("ProducerService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("producer.id", id.String()),
	))
	defer span.End()

	if params.IsEmpty() {
		return nil, fmt.Errorf("update body has no recognized fields: %w", types.ErrValidation)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *ProducerServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("ProducerService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("producer.id", id.String()),
	))
	defer span.End()

	return s.repo.Delete(ctx, id)
}
