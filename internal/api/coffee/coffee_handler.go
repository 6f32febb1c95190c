package coffee

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/beanwise/coffee-api/internal/api"
	"github.com/beanwise/coffee-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service CoffeeService
}

func NewCoffeeHandler(service CoffeeService, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, types.ErrValidation
	}
	return id, nil
}

// List handles GET /coffees.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CoffeeHandler").Start(r.Context(), "List")
	defer span.End()

	coffees, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list coffees", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, coffees)
}

// GetByID handles GET /coffees/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CoffeeHandler").Start(r.Context(), "GetByID")
	defer span.End()

	id, err := parseID(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid coffee id")
		return
	}

	c, err := h.service.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, c)
}

// Create handles POST /coffees/create.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CoffeeHandler").Start(r.Context(), "Create")
	defer span.End()

	var params types.CreateCoffeeParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.service.Create(ctx, params)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to create coffee", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, c)
}

// Update handles PUT /coffees/edit/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CoffeeHandler").Start(r.Context(), "Update")
	defer span.End()

	id, err := parseID(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid coffee id")
		return
	}

	var params types.UpdateCoffeeParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.service.Update(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, c)
}

// Delete handles DELETE /coffees/delete/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CoffeeHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := parseID(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid coffee id")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "coffee deleted",
	})
}
