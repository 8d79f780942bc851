package gym

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/codewithjaspreet/og-backend/internal/logger"
	"github.com/codewithjaspreet/og-backend/internal/schema"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockGymService struct{ mock.Mock }

func (m *MockGymService) CreateGym(ctx context.Context, g *schema.Gym) (string, error) {
	args := m.Called(ctx, g)
	return args.String(0), args.Error(1)
}

func (m *MockGymService) CreateGymPlan(ctx context.Context, p *schema.GymPlan) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockGymService) FindByName(ctx context.Context, name string) (*Record, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *MockGymService) AssignOwner(ctx context.Context, gymID, ownerID string) error {
	return m.Called(ctx, gymID, ownerID).Error(0)
}

func (m *MockGymService) AddMember(ctx context.Context, rec *Record, memberID string) error {
	return m.Called(ctx, rec, memberID).Error(0)
}

func setupRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(service)

	router := gin.New()
	router.POST("/add-gym", handler.AddGym)
	router.POST("/add-gym-plans", handler.AddGymPlans)
	return router
}

func TestHandler_AddGym(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := new(MockGymService)
		service.On("CreateGym", mock.Anything, mock.Anything).Return("g1", nil)
		router := setupRouter(service)

		body := `{"gym_name":"Iron Temple","owner":"uid-1"}`
		req := httptest.NewRequest("POST", "/add-gym", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["status"])
		assert.Equal(t, "Gym added successfully", resp["message"])
		assert.Equal(t, "g1", resp["gym_id"])
	})

	t.Run("unknown field rejected with path", func(t *testing.T) {
		service := new(MockGymService)
		router := setupRouter(service)

		body := `{"gym_name":"Iron Temple","owner":"uid-1","rating":5}`
		req := httptest.NewRequest("POST", "/add-gym", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp struct {
			Status  bool   `json:"status"`
			Error   string `json:"error"`
			Message string `json:"message"`
			Details []struct {
				Path    string `json:"path"`
				Message string `json:"message"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Status)
		assert.Equal(t, "ValidationError", resp.Error)
		assert.Equal(t, "Invalid request payload", resp.Message)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "rating", resp.Details[0].Path)
		service.AssertNotCalled(t, "CreateGym", mock.Anything, mock.Anything)
	})

	t.Run("missing body is a validation error", func(t *testing.T) {
		service := new(MockGymService)
		router := setupRouter(service)

		req := httptest.NewRequest("POST", "/add-gym", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_AddGymPlans(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := new(MockGymService)
		service.On("CreateGymPlan", mock.Anything, mock.Anything).Return("p1", nil)
		router := setupRouter(service)

		body := `{"gym_id":"g1","gym_name":"Iron Temple","plan_name":"Gold","plan_charges":999,"plan_duration":3}`
		req := httptest.NewRequest("POST", "/add-gym-plans", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Gym plans added successfully", resp["message"])
		assert.Equal(t, "p1", resp["gym_plans_id"])
	})

	t.Run("missing plan_name rejected", func(t *testing.T) {
		service := new(MockGymService)
		router := setupRouter(service)

		body := `{"gym_id":"g1","gym_name":"Iron Temple","plan_charges":999,"plan_duration":3}`
		req := httptest.NewRequest("POST", "/add-gym-plans", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		service.AssertNotCalled(t, "CreateGymPlan", mock.Anything, mock.Anything)
	})
}
