package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/h3tools/hashtrack/internal/domain"
)

type FakeUserFinder struct {
	GetUserFunc func(ctx context.Context, id uint) (domain.User, error)
}

func (f *FakeUserFinder) GetUser(ctx context.Context, id uint) (domain.User, error) {
	return f.GetUserFunc(ctx, id)
}

func setupGuardedRouter(users UserFinder, userID interface{}) *gin.Engine {
	gin.SetMode(gin.TestMode)

	guard := NewPermissionGuard(users)

	router := gin.New()
	if userID != nil {
		router.Use(func(ctx *gin.Context) {
			ctx.Set(ContextKeyUserID, userID)
		})
	}
	router.GET("/entry", guard.RequireDataEntry(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	router.GET("/admin", guard.RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func TestPermissionGuard(t *testing.T) {
	userWith := func(permissions string) UserFinder {
		return &FakeUserFinder{
			GetUserFunc: func(ctx context.Context, id uint) (domain.User, error) {
				return domain.User{ID: id, Permissions: permissions}, nil
			},
		}
	}

	tests := []struct {
		name        string
		permissions string
		path        string
		wantStatus  int
	}{
		{"data_entry reaches entry routes", domain.PermissionDataEntry, "/entry", http.StatusOK},
		{"admin reaches entry routes", domain.PermissionAdmin, "/entry", http.StatusOK},
		{"pending is forbidden", domain.PermissionPending, "/entry", http.StatusForbidden},
		{"none is forbidden", domain.PermissionNone, "/entry", http.StatusForbidden},
		{"data_entry cannot reach admin routes", domain.PermissionDataEntry, "/admin", http.StatusForbidden},
		{"admin reaches admin routes", domain.PermissionAdmin, "/admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupGuardedRouter(userWith(tt.permissions), uint(1))
			recorder := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, recorder.Body.String(), "insufficient permissions")
			}
		})
	}

	t.Run("missing context user is a server error", func(t *testing.T) {
		router := setupGuardedRouter(userWith(domain.PermissionAdmin), nil)
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/entry", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		users := &FakeUserFinder{
			GetUserFunc: func(ctx context.Context, id uint) (domain.User, error) {
				return domain.User{}, errors.New("user not found")
			},
		}

		router := setupGuardedRouter(users, uint(1))
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/entry", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
