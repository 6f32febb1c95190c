package auth

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/beanwise/coffee-api/app/observability/metrics"
	"github.com/beanwise/coffee-api/internal/api"
)

type AuthHandler struct {
	authService AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Register")
	defer span.End()
	l := h.logger.With(slog.String("handler", "Register"))

	var req RegisterRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Invalid register payload", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(ctx, req.Username, req.Email, req.Password)
	metrics.Get().RegisterRequestsTotal.Add(ctx, 1)
	if err != nil {
		l.WarnContext(ctx, "Register failed", slog.Any("error", err), slog.String("email", req.Email))
		span.RecordError(err)
		span.SetStatus(codes.Error, "register failed")
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusCreated, user)
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Login")
	defer span.End()
	l := h.logger.With(slog.String("handler", "Login"))

	var req LoginRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	accessToken, refreshToken, user, err := h.authService.Login(ctx, req.Email, req.Password)
	metrics.Get().LoginRequestsTotal.Add(ctx, 1)
	if err != nil {
		l.WarnContext(ctx, "Login failed", slog.Any("error", err), slog.String("email", req.Email))
		span.RecordError(err)
		span.SetStatus(codes.Error, "login failed")
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// CheckSession handles GET /users/check-session. It runs behind the
// Authenticate middleware, so a verified user id is already in context.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "CheckSession")
	defer span.End()
	l := h.logger.With(slog.String("handler", "CheckSession"))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		l.ErrorContext(ctx, "User id missing from authenticated context")
		api.ErrorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.authService.GetUserByID(ctx, userID)
	if err != nil {
		l.WarnContext(ctx, "Session user lookup failed", slog.Any("error", err))
		span.RecordError(err)
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, user)
}

// RefreshSession handles POST /users/refresh.
func (h *AuthHandler) RefreshSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "RefreshSession")
	defer span.End()

	var req RefreshTokenRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.RefreshToken == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "refresh_token is required")
		return
	}

	accessToken, refreshToken, err := h.authService.RefreshSession(ctx, req.RefreshToken)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "refresh failed")
		api.HandleDomainError(w, r, err)
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Logout handles POST /users/logout. Missing or already-revoked tokens are
// still a success; the client side discards its copy either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Logout")
	defer span.End()

	var req LogoutRequest
	// An empty body is fine here.
	_ = api.DecodeJSONBody(w, r, &req)

	if req.RefreshToken != "" {
		if err := h.authService.Logout(ctx, req.RefreshToken); err != nil {
			h.logger.WarnContext(ctx, "Logout revocation failed", slog.Any("error", err))
			span.RecordError(err)
			api.HandleDomainError(w, r, err)
			return
		}
	}

	api.WriteJSONResponse(w, r, http.StatusOK, Response{
		Success: true,
		Message: "Logged out successfully",
	})
}
