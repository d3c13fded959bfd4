package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims AdminClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func adminClaims(role string, exp time.Time) AdminClaims {
	return AdminClaims{
		Email: "officer@ra.org.na",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func adminRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/admin", RequireAdmin(secret), func(c *gin.Context) {
		c.String(http.StatusOK, AdminActor(c))
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		secret string
		header string
		want   int
		body   string
	}{
		{name: "valid admin", secret: testSecret, header: "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, adminClaims(RoleAdmin, future)), want: http.StatusOK, body: "officer@ra.org.na"},
		{name: "missing header", secret: testSecret, want: http.StatusUnauthorized},
		{name: "not bearer", secret: testSecret, header: "Basic abc", want: http.StatusUnauthorized},
		{name: "wrong secret", secret: testSecret, header: "Bearer " + signToken(t, "other", jwt.SigningMethodHS256, adminClaims(RoleAdmin, future)), want: http.StatusUnauthorized},
		{name: "expired", secret: testSecret, header: "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, adminClaims(RoleAdmin, time.Now().Add(-time.Hour))), want: http.StatusUnauthorized},
		{name: "wrong algorithm", secret: testSecret, header: "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS512, adminClaims(RoleAdmin, future)), want: http.StatusUnauthorized},
		{name: "citizen role", secret: testSecret, header: "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, adminClaims("citizen", future)), want: http.StatusForbidden},
		{name: "secret not configured", secret: "", header: "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, adminClaims(RoleAdmin, future)), want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			adminRouter(tt.secret).ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRequireAdmin_FallsBackToSubject(t *testing.T) {
	gin.SetMode(gin.TestMode)
	claims := adminClaims(RoleAdmin, time.Now().Add(time.Hour))
	claims.Email = ""

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, claims))
	w := httptest.NewRecorder()
	adminRouter(testSecret).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "staff-1", w.Body.String())
}

func TestMemoryLimiter(t *testing.T) {
	l := NewMemoryLimiter(2, time.Minute)
	now := time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "1.1.1.1"))
	assert.True(t, l.Allow(ctx, "1.1.1.1"))
	assert.False(t, l.Allow(ctx, "1.1.1.1"))
	assert.True(t, l.Allow(ctx, "2.2.2.2"), "keys are limited independently")

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow(ctx, "1.1.1.1"), "one token refills every window/limit")
	assert.False(t, l.Allow(ctx, "1.1.1.1"))
}

func TestRedisLimiter_FailsOpenWithoutClient(t *testing.T) {
	l := NewRedisLimiter(nil, "track", 1, time.Minute)
	assert.True(t, l.Allow(context.Background(), "1.1.1.1"))

	var nilLimiter *RedisLimiter
	assert.True(t, nilLimiter.Allow(context.Background(), "1.1.1.1"))
}

type countingLimiter struct {
	allowed int
	keys    []string
}

func (l *countingLimiter) Allow(_ context.Context, key string) bool {
	l.keys = append(l.keys, key)
	if l.allowed <= 0 {
		return false
	}
	l.allowed--
	return true
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := &countingLimiter{allowed: 1}
	r := gin.New()
	r.GET("/track", RateLimit(limiter, nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/track", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do().Code)
	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	assert.Equal(t, []string{"10.0.0.7", "10.0.0.7"}, limiter.keys)
}

func TestRateLimit_NilLimiterPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/track", RateLimit(nil, nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/track", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
