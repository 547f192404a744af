package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h3tools/hashtrack/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	auth := NewAuthenticator(testSigningKey)

	router := gin.New()
	router.GET("/private", auth.VerifyJWT(), func(ctx *gin.Context) {
		id, _ := UserIDFromContext(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	return router
}

func TestVerifyJWT(t *testing.T) {
	t.Run("valid token passes and sets the user id", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "curl/8.0")
		require.NoError(t, err)

		router := setupAuthRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "curl/8.0")

		router.ServeHTTP(recorder, req)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"user_id":42}`, recorder.Body.String())
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		router := setupAuthRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token replayed from another user agent is rejected", func(t *testing.T) {
		token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, "curl/8.0")
		require.NoError(t, err)

		router := setupAuthRouter()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("User-Agent", "Mozilla/5.0")

		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
