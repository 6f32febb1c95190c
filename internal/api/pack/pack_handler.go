package pack

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
	service PackService
}

func NewPackHandler(service PackService, logger *slog.Logger) *Handler {
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

// List handles GET /packs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PackHandler").Start(r.Context(), "List")
	defer span.End()

	packs, err := h.service.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list packs", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, packs)
}

// GetByID handles GET /packs/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PackHandler").Start(r.Context(), "GetByID")
	defer span.End()

	id, err := parseID(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid pack id")
		return
	}

	p, err := h.service.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, p)
}

// Create handles POST /packs/create.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PackHandler").Start(r.Context(), "Create")
	defer span.End()

	var params types.CreatePackParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Create(ctx, params)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to create pack", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, p)
}

// Update handles PUT /packs/edit/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PackHandler").Start(r.Context(), "Update")
	defer span.End()

	id, err := parseID(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid pack id")
		return
	}

	var params types.UpdatePackParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.Update(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, p)
}

// Delete handles DELETE /packs/delete/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PackHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := parseID(r)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "invalid pack id")
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "pack deleted",
	})
}
