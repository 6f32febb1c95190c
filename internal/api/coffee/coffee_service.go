package coffee

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

var _ CoffeeService = (*CoffeeServiceImpl)(nil)

type CoffeeService interface {
	List(ctx context.Context) ([]types.Coffee, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Coffee, error)
	Create(ctx context.Context, params types.CreateCoffeeParams) (*types.Coffee, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpdateCoffeeParams) (*types.Coffee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CoffeeServiceImpl struct {
	logger *slog.Logger
	repo   CoffeeRepository
}

func NewCoffeeService(repo CoffeeRepository, logger *slog.Logger) *CoffeeServiceImpl {
	return &CoffeeServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *CoffeeServiceImpl) List(ctx context.Context) ([]types.Coffee, error) {
	return s.repo.List(ctx)
}

func (s *CoffeeServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*types.Coffee, error) {
	ctx, span := otel.Tracer("CoffeeService").Start(ctx, "GetByID", trace.WithAttributes(
		attribute.String("coffee.id", id.String()),
	))
	defer span.End()

	return s.repo.GetByID(ctx, id)
}

func (s *CoffeeServiceImpl) Create(ctx context.Context, params types.CreateCoffeeParams) (*types.Coffee, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("coffee name is required: %w", types.ErrValidation)
	}
	return s.repo.Create(ctx, params)
}

func (s *CoffeeServiceImpl) Update(ctx context.Context, id uuid.UUID, params types.UpdateCoffeeParams) (*types.Coffee, error) {
	ctx, span := otel.Tracer("CoffeeService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("coffee.id", id.String()),
	))
	defer span.End()

	if params.IsEmpty() {
		return nil, fmt.Errorf("update body has no recognized fields: %w", types.ErrValidation)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *CoffeeServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("CoffeeService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("coffee.id", id.String()),
	))
	defer span.End()

	return s.repo.Delete(ctx, id)
}
