package producer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/beanwise/coffee-api/internal/types"
)

// MockProducerService is a mock implementation of ProducerService
type MockProducerService struct {
	mock.Mock
}

func (m *MockProducerService) List(ctx context.Context) ([]types.Producer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Producer), args.Error(1)
}

func (m *MockProducerService) GetByID(ctx context.Context, id uuid.UUID) (*types.Producer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Producer), args.Error(1)
}

func (m *MockProducerService) Create(ctx context.Context, params types.CreateProducerParams) (*types.Producer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Producer), args.Error(1)
}

func (m *MockProducerService) Update(ctx context.Context, id uuid.UUID, params types.UpdateProducerParams) (*types.Producer, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Producer), args.Error(1)
}

func (m *MockProducerService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestProducerHandler_List(t *testing.T) {
	mockService := new(MockProducerService)
	handler := NewProducerHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/producers", nil)
	w := httptest.NewRecorder()

	producers := []types.Producer{
		{ID: uuid.New(), Name: "Santa Maria"},
		{ID: uuid.New(), Name: "Finca Alta"},
	}
	mockService.On("List", mock.Anything).Return(producers, nil).Once()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []types.Producer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
	mockService.AssertExpectations(t)
}

func TestProducerHandler_GetByID(t *testing.T) {
	mockService := new(MockProducerService)
	handler := NewProducerHandler(mockService, testLogger())

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/producers/"+id.String(), nil), "id", id.String())
		w := httptest.NewRecorder()

		mockService.On("GetByID", mock.Anything, id).
			Return(&types.Producer{ID: id, Name: "Santa Maria"}, nil).Once()

		handler.GetByID(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/producers/not-a-uuid", nil), "id", "not-a-uuid")
		w := httptest.NewRecorder()

		handler.GetByID(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/producers/"+id.String(), nil), "id", id.String())
		w := httptest.NewRecorder()

		mockService.On("GetByID", mock.Anything, id).Return(nil, types.ErrNotFound).Once()

		handler.GetByID(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestProducerHandler_Create(t *testing.T) {
	mockService := new(MockProducerService)
	handler := NewProducerHandler(mockService, testLogger())

	t.Run("Success", func(t *testing.T) {
		params := types.CreateProducerParams{Name: "Santa Maria", Country: "Colombia"}
		body, _ := json.Marshal(params)
		req := httptest.NewRequest(http.MethodPost, "/producers/create", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		created := &types.Producer{ID: uuid.New(), Name: "Santa Maria", Country: "Colombia"}
		mockService.On("Create", mock.Anything, params).Return(created, nil).Once()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response types.Producer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, created.ID, response.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingName", func(t *testing.T) {
		params := types.CreateProducerParams{Country: "Colombia"}
		body, _ := json.Marshal(params)
		req := httptest.NewRequest(http.MethodPost, "/producers/create", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		mockService.On("Create", mock.Anything, params).Return(nil, types.ErrValidation).Once()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertExpectations(t)
	})
}

func TestProducerHandler_Delete(t *testing.T) {
	mockService := new(MockProducerService)
	handler := NewProducerHandler(mockService, testLogger())

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/producers/delete/"+id.String(), nil), "id", id.String())
		w := httptest.NewRecorder()

		mockService.On("Delete", mock.Anything, id).Return(nil).Once()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "producer deleted")
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/producers/delete/"+id.String(), nil), "id", id.String())
		w := httptest.NewRecorder()

		mockService.On("Delete", mock.Anything, id).Return(types.ErrNotFound).Once()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
