package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"roads_authority/internal/adapter/http/handlers"
	"roads_authority/internal/adapter/http/handlers/mocks"
	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routeMocks struct {
	applications *mocks.MockIPLNApplicationUseCase
	payments     *mocks.MockIPLNPaymentUseCase
}

func newTestRouter(t *testing.T, trackLimit gin.HandlerFunc) (*gin.Engine, routeMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routeMocks{
		applications: mocks.NewMockIPLNApplicationUseCase(ctrl),
		payments:     mocks.NewMockIPLNPaymentUseCase(ctrl),
	}
	h := handlerSet{
		applications:  handlers.NewPLNApplicationHandler(m.applications),
		payments:      handlers.NewPLNPaymentHandler(m.payments),
		offices:       handlers.NewOfficeHandler(mocks.NewMockIOfficeUseCase(ctrl)),
		documents:     handlers.NewDocumentHandler(mocks.NewMockIDocumentUseCase(ctrl)),
		reports:       handlers.NewDamageReportHandler(mocks.NewMockIDamageReportUseCase(ctrl)),
		notifications: handlers.NewNotificationHandler(mocks.NewMockINotificationUseCase(ctrl)),
	}
	r := gin.New()
	require.NoError(t, configureProxies(r, nil))
	registerRoutes(r, h, middleware.RequireAdmin("secret"), trackLimit)
	return r, m
}

func pass(c *gin.Context) { c.Next() }

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRegisterRoutes_Ping(t *testing.T) {
	r, _ := newTestRouter(t, pass)

	w := do(r, http.MethodGet, "/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRegisterRoutes_AdminRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t, pass)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/v1/admin/pln/applications"},
		{http.MethodGet, "/v1/admin/pln/applications/by-email?email=a@b.na"},
		{http.MethodGet, "/v1/admin/pln/dashboard"},
		{http.MethodPost, "/v1/admin/pln/expire-overdue"},
		{http.MethodGet, "/v1/admin/pln/payments/p1"},
		{http.MethodPost, "/v1/admin/offices"},
		{http.MethodDelete, "/v1/admin/documents/tenders/d1"},
		{http.MethodGet, "/v1/admin/damage-reports/filters"},
	} {
		w := do(r, route.method, route.path)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
	}
}

func TestRegisterRoutes_TrackingIsRateLimited(t *testing.T) {
	blocked := func(c *gin.Context) { c.AbortWithStatus(http.StatusTooManyRequests) }
	r, _ := newTestRouter(t, blocked)

	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/v1/pln/applications/track").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/v1/pln/unknown").Code)
}

func TestRegisterRoutes_TrackingLimitIgnoresForwardedFor(t *testing.T) {
	r, m := newTestRouter(t, middleware.RateLimit(middleware.NewMemoryLimiter(10, time.Minute), nil))
	m.applications.EXPECT().Track(gomock.Any(), "PLN-2026-ABCDEF123456", gomock.Any()).
		Return(usecase.TrackingView{}, usecase.ErrInvalidTrackingSecret).Times(10)

	codes := map[int]int{}
	for i := 0; i < 50; i++ {
		body := fmt.Sprintf(`{"reference_id":"PLN-2026-ABCDEF123456","secret":"%05d"}`, i)
		req := httptest.NewRequest(http.MethodPost, "/v1/pln/applications/track", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
		req.RemoteAddr = "203.0.113.7:40000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	assert.Equal(t, 10, codes[http.StatusUnauthorized])
	assert.Equal(t, 40, codes[http.StatusTooManyRequests])
}

func TestConfigureProxies(t *testing.T) {
	clientIP := func(proxies []string, remoteAddr string) string {
		r := gin.New()
		require.NoError(t, configureProxies(r, proxies))
		r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })
		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.Header.Set("X-Forwarded-For", "198.51.100.9")
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Body.String()
	}

	assert.Equal(t, "203.0.113.7", clientIP(nil, "203.0.113.7:40000"))
	assert.Equal(t, "198.51.100.9", clientIP([]string{"10.0.0.1"}, "10.0.0.1:40000"))
	assert.Equal(t, "203.0.113.7", clientIP([]string{"10.0.0.1"}, "203.0.113.7:40000"))
	assert.Error(t, configureProxies(gin.New(), []string{"not-an-ip"}))
}

func TestRegisterRoutes_PublicPLNRoutesDoNotExposePersonalData(t *testing.T) {
	r, m := newTestRouter(t, pass)
	m.payments.EXPECT().ListByReference(gomock.Any(), "PLN-2026-ABCDEF123456").Return([]entities.PLNPayment{{
		ID:                 "pay-1",
		ReferenceID:        "PLN-2026-ABCDEF123456",
		Amount:             2000,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"payer":{"identification":{"number":"85010112345"},"email":"t.shikongo@example.com"}}`),
		ProviderPayload: map[string]interface{}{
			"payer": map[string]interface{}{"email": "t.shikongo@example.com"},
		},
	}}, nil)

	w := do(r, http.MethodGet, "/v1/pln/payments/PLN-2026-ABCDEF123456")
	require.Equal(t, http.StatusOK, w.Code)
	for _, field := range []string{"mp_payload", "85010112345", "t.shikongo@example.com"} {
		assert.NotContains(t, w.Body.String(), field)
	}

	// Lookup by email is only mounted behind admin auth.
	w = do(r, http.MethodGet, "/v1/pln/applications?email=t.shikongo@example.com")
	assert.Equal(t, http.StatusNotFound, w.Code)
	for _, field := range []string{"id_number", "postal_address", "street_address", "cell_number"} {
		assert.NotContains(t, w.Body.String(), field)
	}
}

type fakeExpirer struct {
	calls int
	err   error
}

func (f *fakeExpirer) ExpireOverdue(context.Context, time.Time) (int, error) {
	f.calls++
	return 2, f.err
}

func TestRunExpirySweeper(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		f := &fakeExpirer{}
		runExpirySweeper(context.Background(), f, 0)
		assert.Equal(t, 0, f.calls)
	})

	t.Run("sweeps until cancelled", func(t *testing.T) {
		f := &fakeExpirer{err: errors.New("scan failed")}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		runExpirySweeper(ctx, f, time.Hour)
		assert.Equal(t, 1, f.calls)
	})
}
