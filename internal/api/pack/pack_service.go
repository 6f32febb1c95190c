package pack

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

var _ PackService = (*PackServiceImpl)(nil)

type PackService interface {
	List(ctx context.Context) ([]types.Pack, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Pack, error)
	Create(ctx context.Context, params types.CreatePackParams) (*types.Pack, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpdatePackParams) (*types.Pack, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PackServiceImpl struct {
	logger *slog.Logger
	repo   PackRepository
}

func NewPackService(repo PackRepository, logger *slog.Logger) *PackServiceImpl {
	return &PackServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *PackServiceImpl) List(ctx context.Context) ([]types.Pack, error) {
	return s.repo.List(ctx)
}

func (s *PackServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*types.Pack, error) {
	ctx, span := otel.Tracer("PackService").Start(ctx, "GetByID", trace.WithAttributes(
		attribute.String("pack.id", id.String()),
	))
	defer span.End()

	return s.repo.GetByID(ctx, id)
}

func (s *PackServiceImpl) Create(ctx context.Context, params types.CreatePackParams) (*types.Pack, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("pack name is required: %w", types.ErrValidation)
	}
	return s.repo.Create(ctx, params)
}

func (s *PackServiceImpl) Update(ctx context.Context, id uuid.UUID, params types.UpdatePackParams) (*types.Pack, error) {
	ctx, span := otel.Tracer("PackService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("pack.id", id.String()),
	))
	defer span.End()

	if params.IsEmpty() {
		return nil, fmt.Errorf("update body has no recognized fields: %w", types.ErrValidation)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *PackServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("PackService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("pack.id", id.String()),
	))
	defer span.End()

	return s.repo.Delete(ctx, id)
}
