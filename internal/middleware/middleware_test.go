package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/SscSPs/bizbooks/internal/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func authRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret, "bizbooks"), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func get(r http.Handler, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthMiddleware_ValidTokenSetsUser(t *testing.T) {
	token, err := utils.GenerateJWT("user-7", secret, time.Minute, "bizbooks")
	require.NoError(t, err)

	w := get(authRouter(), "/me", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", w.Body.String())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateJWT("user-7", secret, -time.Minute, "bizbooks")
	require.NoError(t, err)

	w := get(authRouter(), "/me", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has expired", errorOf(t, w))
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	emptySubject, err := utils.GenerateJWT("", secret, time.Minute, "bizbooks")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-7", secret, time.Minute, "someone-else")
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		want          string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "Authorization header format must be Bearer {token}"},
		{"garbage token", "Bearer abc.def.ghi", "Invalid token"},
		{"no subject", "Bearer " + emptySubject, "Invalid token claims"},
		{"wrong issuer", "Bearer " + foreign, "Invalid token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(authRouter(), "/me", tt.authorization)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.want, errorOf(t, w))
		})
	}
}

func rateLimitedRouter(t *testing.T, client *redis.Client) *gin.Engine {
	t.Helper()
	lim, err := middleware.NewLimiter("2-M", client)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit_MemoryStore(t *testing.T) {
	r := rateLimitedRouter(t, nil)

	first := get(r, "/ping", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, get(r, "/ping", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/ping", "").Code)
}

func TestRateLimit_RedisStoreIsShared(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	// Two routers model two service instances behind one redis.
	a := rateLimitedRouter(t, client)
	b := rateLimitedRouter(t, client)

	assert.Equal(t, http.StatusOK, get(a, "/ping", "").Code)
	assert.Equal(t, http.StatusOK, get(b, "/ping", "").Code)
	w := get(a, "/ping", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_StoreFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	r := rateLimitedRouter(t, client)
	mr.Close()

	w := get(r, "/ping", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNewLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewLimiter("lots", nil)
	assert.Error(t, err)
}

func TestStructuredLogging_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/businesses/:business_id/x", func(c *gin.Context) {
		middleware.GetLoggerFromContext(c).Info("inside")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/businesses/biz-9/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"business_id":"biz-9"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestStructuredLogging_GeneratesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.DiscardHandler)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "/x", "")

	assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
}
