package v1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h3tools/hashtrack/internal/api/handler/v1/response"
	"github.com/h3tools/hashtrack/internal/domain"
	"github.com/h3tools/hashtrack/internal/service"
)

type FakeHonorService struct {
	HonorsDueForKennelFunc func(ctx context.Context, kennelID uint) ([]domain.HonorDue, error)
	HonorsDueForEventFunc  func(ctx context.Context, eventID uint) ([]domain.HonorDue, error)
	RecordDeliveriesFunc   func(ctx context.Context, deliveries []domain.HonorDelivery) []service.DeliveryResult
	CreateDefFunc          func(ctx context.Context, def domain.HonorDef) (domain.HonorDef, error)
	ListDefsByKennelFunc   func(ctx context.Context, kennelID uint) ([]domain.HonorDef, error)
}

func (f *FakeHonorService) HonorsDueForKennel(ctx context.Context, kennelID uint) ([]domain.HonorDue, error) {
	return f.HonorsDueForKennelFunc(ctx, kennelID)
}

func (f *FakeHonorService) HonorsDueForEvent(ctx context.Context, eventID uint) ([]domain.HonorDue, error) {
	return f.HonorsDueForEventFunc(ctx, eventID)
}

func (f *FakeHonorService) RecordDeliveries(ctx context.Context, deliveries []domain.HonorDelivery) []service.DeliveryResult {
	return f.RecordDeliveriesFunc(ctx, deliveries)
}

func (f *FakeHonorService) CreateDef(ctx context.Context, def domain.HonorDef) (domain.HonorDef, error) {
	return f.CreateDefFunc(ctx, def)
}

func (f *FakeHonorService) ListDefsByKennel(ctx context.Context, kennelID uint) ([]domain.HonorDef, error) {
	return f.ListDefsByKennelFunc(ctx, kennelID)
}

func setupHonorRouter(svc HonorService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHonorHandler(svc)

	router := gin.New()
	router.GET("/kennels/:kennelID/honors-due", handler.HandleHonorsDueForKennel)
	router.GET("/events/:eventID/honors-due", handler.HandleHonorsDueForEvent)
	router.POST("/events/:eventID/deliveries", handler.HandleRecordDeliveries)

	return router
}

func TestHandleHonorsDueForKennel(t *testing.T) {
	t.Run("returns the report", func(t *testing.T) {
		svc := &FakeHonorService{
			HonorsDueForKennelFunc: func(ctx context.Context, kennelID uint) ([]domain.HonorDue, error) {
				assert.Equal(t, uint(3), kennelID)
				return []domain.HonorDue{
					{HasherID: 42, HasherName: "Just Mary", HonorID: 7, HonorTitle: "Red Dress", Threshold: 10, Category: domain.CategoryHash},
				}, nil
			},
		}

		router := setupHonorRouter(svc)
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/kennels/3/honors-due", nil)

		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var due []domain.HonorDue
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &due))
		require.Len(t, due, 1)
		assert.Equal(t, "Red Dress", due[0].HonorTitle)
	})

	t.Run("query failure is a 500, not an empty report", func(t *testing.T) {
		svc := &FakeHonorService{
			HonorsDueForKennelFunc: func(ctx context.Context, kennelID uint) ([]domain.HonorDue, error) {
				return nil, errors.New("connection refused")
			},
		}

		router := setupHonorRouter(svc)
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/kennels/3/honors-due", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		router := setupHonorRouter(&FakeHonorService{})
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/kennels/zero/honors-due", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandleHonorsDueForEventNotFound(t *testing.T) {
	svc := &FakeHonorService{
		HonorsDueForEventFunc: func(ctx context.Context, eventID uint) ([]domain.HonorDue, error) {
			return nil, service.ErrEventNotFound
		},
	}

	router := setupHonorRouter(svc)
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events/99/honors-due", nil)

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandleRecordDeliveries(t *testing.T) {
	t.Run("per-item outcomes for a mixed batch", func(t *testing.T) {
		svc := &FakeHonorService{
			RecordDeliveriesFunc: func(ctx context.Context, deliveries []domain.HonorDelivery) []service.DeliveryResult {
				require.Len(t, deliveries, 2)
				assert.Equal(t, uint(5), deliveries[0].EventID, "event id comes from the path")

				return []service.DeliveryResult{
					{Delivery: domain.HonorDelivery{ID: 100, HonorID: 7, HasherID: 42, EventID: 5}},
					{Err: service.ErrInvalidArgument},
				}
			},
		}

		router := setupHonorRouter(svc)
		recorder := httptest.NewRecorder()
		body := `{"deliveries":[{"honor_id":7,"hasher_id":42},{"honor_id":8}]}`
		req := httptest.NewRequest(http.MethodPost, "/events/5/deliveries", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)

		var resp response.DeliveriesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 2)
		assert.Equal(t, uint(100), resp.Results[0].DeliveryID)
		assert.Empty(t, resp.Results[0].Error)
		assert.NotEmpty(t, resp.Results[1].Error)
	})

	t.Run("empty batch is a 400", func(t *testing.T) {
		router := setupHonorRouter(&FakeHonorService{})
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/events/5/deliveries", strings.NewReader(`{"deliveries":[]}`))
		req.Header.Set("Content-Type", "application/json")

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
