package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanwise/coffee-api/internal/types"
)

func signTestToken(t *testing.T, secret string, claims types.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthenticate(t *testing.T) {
	cfg := testJWTConfig()
	middleware := Authenticate(testLogger(), cfg.JWT)

	userID := uuid.New()
	validClaims := func() types.Claims {
		now := time.Now()
		return types.Claims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    cfg.JWT.Issuer,
				Audience:  jwt.ClaimStrings{cfg.JWT.Audience},
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			},
		}
	}

	var gotUserID uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	t.Run("ValidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/check-session", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg.JWT.SecretKey, validClaims()))
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/check-session", nil)
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/check-session", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("BadSignature", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/check-session", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, "some-other-secret", validClaims()))
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		req := httptest.NewRequest(http.MethodGet, "/users/check-session", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg.JWT.SecretKey, claims))
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		claims := validClaims()
		claims.Issuer = "someone-else"

		req := httptest.NewRequest(http.MethodGet, "/users/check-session", nil)
		req.Header.Set("Authorization", "Bearer "+signTestToken(t, cfg.JWT.SecretKey, claims))
		w := httptest.NewRecorder()

		middleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
