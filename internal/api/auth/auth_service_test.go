package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/beanwise/coffee-api/config"
	"github.com/beanwise/coffee-api/internal/types"
)

// MockAuthRepo is a mock implementation of the AuthRepo interface
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) CreateUser(ctx context.Context, username, email, hashedPassword string) (*types.UserAuth, error) {
	args := m.Called(ctx, username, email, hashedPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*types.UserAuth, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*types.UserAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockAuthRepo) GetRefreshToken(ctx context.Context, token string) (*types.RefreshTokenInfo, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RefreshTokenInfo), args.Error(1)
}

func (m *MockAuthRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT = config.JWTConfig{
		SecretKey:        "test-access-secret",
		RefreshSecretKey: "test-refresh-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		Issuer:           "test-issuer",
		Audience:         "test-audience",
	}
	return cfg
}

func TestRegister(t *testing.T) {
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), testLogger())

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		created := &types.UserAuth{
			ID:       uuid.New(),
			Username: "ana",
			Email:    "ana@x.com",
		}

		mockRepo.On("CreateUser", ctx, "ana", "ana@x.com", mock.MatchedBy(func(hash string) bool {
			// The service must store a bcrypt hash, never the plaintext.
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")) == nil
		})).Return(created, nil).Once()

		user, err := service.Register(ctx, "ana", "ana@x.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
		assert.Empty(t, user.Password)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		ctx := context.Background()

		_, err := service.Register(ctx, "ana", "", "secret")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrValidation)
		mockRepo.AssertNotCalled(t, "CreateUser", ctx, "ana", "", mock.Anything)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		ctx := context.Background()

		mockRepo.On("CreateUser", ctx, "ana", "ana@x.com", mock.AnythingOfType("string")).
			Return(nil, types.ErrConflict).Once()

		_, err := service.Register(ctx, "ana", "ana@x.com", "secret")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrConflict)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	mockRepo := new(MockAuthRepo)
	cfg := testJWTConfig()
	service := NewAuthService(mockRepo, cfg, testLogger())

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		email := "test@example.com"
		password := "password123"
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		user := &types.UserAuth{
			ID:       uuid.New(),
			Username: "testuser",
			Email:    email,
			Password: string(hashedPassword),
		}

		mockRepo.On("GetUserByEmail", ctx, email).Return(user, nil).Once()
		mockRepo.On("StoreRefreshToken", ctx, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()

		accessToken, refreshToken, gotUser, err := service.Login(ctx, email, password)
		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, user.ID, gotUser.ID)
		assert.Empty(t, gotUser.Password)

		// The issued token must resolve back to the same user id.
		claims := &types.Claims{}
		_, err = jwt.ParseWithClaims(accessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, cfg.JWT.Issuer, claims.Issuer)

		mockRepo.AssertExpectations(t)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		ctx := context.Background()

		mockRepo.On("GetUserByEmail", ctx, "nobody@example.com").Return(nil, types.ErrNotFound).Once()

		accessToken, refreshToken, _, err := service.Login(ctx, "nobody@example.com", "password123")
		require.Error(t, err)
		assert.Empty(t, accessToken)
		assert.Empty(t, refreshToken)
		assert.ErrorIs(t, err, types.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidPassword", func(t *testing.T) {
		ctx := context.Background()
		email := "test@example.com"
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correctpassword"), bcrypt.DefaultCost)

		user := &types.UserAuth{
			ID:       uuid.New(),
			Username: "testuser",
			Email:    email,
			Password: string(hashedPassword),
		}

		mockRepo.On("GetUserByEmail", ctx, email).Return(user, nil).Once()

		_, _, _, err := service.Login(ctx, email, "wrongpassword")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrUnauthenticated)
		mockRepo.AssertNotCalled(t, "StoreRefreshToken", ctx, user.ID, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})
}

func TestRefreshSession(t *testing.T) {
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), testLogger())

	t.Run("Success", func(t *testing.T) {
		ctx := context.Background()
		userID := uuid.New()
		oldToken := uuid.NewString()

		info := &types.RefreshTokenInfo{
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		user := &types.UserAuth{ID: userID, Username: "ana", Email: "ana@x.com"}

		mockRepo.On("GetRefreshToken", ctx, oldToken).Return(info, nil).Once()
		mockRepo.On("GetUserByID", ctx, userID).Return(user, nil).Once()
		mockRepo.On("StoreRefreshToken", ctx, userID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil).Once()
		mockRepo.On("InvalidateRefreshToken", ctx, oldToken).Return(nil).Once()

		accessToken, newToken, err := service.RefreshSession(ctx, oldToken)
		require.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, newToken)
		assert.NotEqual(t, oldToken, newToken)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Expired", func(t *testing.T) {
		ctx := context.Background()
		token := uuid.NewString()

		info := &types.RefreshTokenInfo{
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		mockRepo.On("GetRefreshToken", ctx, token).Return(info, nil).Once()

		_, _, err := service.RefreshSession(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrUnauthenticated)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Revoked", func(t *testing.T) {
		ctx := context.Background()
		token := uuid.NewString()
		revokedAt := time.Now().Add(-time.Minute)

		info := &types.RefreshTokenInfo{
			UserID:    uuid.New(),
			ExpiresAt: time.Now().Add(time.Hour),
			RevokedAt: &revokedAt,
		}
		mockRepo.On("GetRefreshToken", ctx, token).Return(info, nil).Once()

		_, _, err := service.RefreshSession(ctx, token)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrUnauthenticated)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogout(t *testing.T) {
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), testLogger())
	ctx := context.Background()

	token := uuid.NewString()
	mockRepo.On("InvalidateRefreshToken", ctx, token).Return(nil).Once()

	err := service.Logout(ctx, token)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
