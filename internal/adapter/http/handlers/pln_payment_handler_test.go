package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roads_authority/internal/adapter/http/handlers/mocks"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func newPaymentRouter(uc usecase.IPLNPaymentUseCase, mock bool) *gin.Engine {
	h := NewPLNPaymentHandler(uc)
	h.mockMode = func() bool { return mock }
	r := gin.New()
	r.POST("/v1/pln/payments/:reference_id", h.CreatePayment)
	r.GET("/v1/pln/payments/:reference_id", h.GetLatestPayment)
	r.GET("/v1/admin/pln/payments/:id", h.GetPayment)
	return r
}

func TestPLNPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)

		w := serve(newPaymentRouter(uc, false), http.MethodPost, "/v1/pln/payments/PLN-2026-ABC", "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "PLN-2026-ABC", json.RawMessage("{}")).
			Return(entities.PLNPayment{ID: "pay-1", ReferenceID: "PLN-2026-ABC", Status: entities.PaymentStatusApproved}, nil)

		w := serve(newPaymentRouter(uc, true), http.MethodPost, "/v1/pln/payments/PLN-2026-ABC", "{")
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "PLN-2026-ABC", gomock.Any()).Return(entities.PLNPayment{}, usecase.ErrApplicationNotAwaitingPayment)

		w := serve(newPaymentRouter(uc, false), http.MethodPost, "/v1/pln/payments/PLN-2026-ABC", `{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "PLN-2026-ABC", json.RawMessage(`{"payment_method_id":"visa"}`)).
			Return(entities.PLNPayment{
				ID:                 "pay-1",
				ReferenceID:        "PLN-2026-ABC",
				Amount:             2000,
				Date:               now,
				Status:             entities.PaymentStatusApproved,
				ProviderPayloadRaw: json.RawMessage(`{"id":1,"payer":{"email":"x@test.com"}}`),
			}, nil)

		w := serve(newPaymentRouter(uc, false), http.MethodPost, "/v1/pln/payments/PLN-2026-ABC", `{"mp_payload":{"payment_method_id":"visa"}}`)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "pay-1", body["payment_id"])
		assert.Equal(t, float64(2000), body["amount"])
		assert.NotContains(t, body, "mp_payload_raw")
		assert.NotContains(t, w.Body.String(), "x@test.com")
	})
}

func TestPLNPaymentHandler_GetLatestPayment(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		uc.EXPECT().ListByReference(gomock.Any(), "PLN-2026-ABC").Return(nil, usecase.ErrInvalidReferenceID)

		w := serve(newPaymentRouter(uc, false), http.MethodGet, "/v1/pln/payments/PLN-2026-ABC", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		uc.EXPECT().ListByReference(gomock.Any(), "PLN-2026-ABC").Return([]entities.PLNPayment{}, nil)

		w := serve(newPaymentRouter(uc, false), http.MethodGet, "/v1/pln/payments/PLN-2026-ABC", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success returns latest without provider payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		old := entities.PLNPayment{ID: "old", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusDenied}
		latest := entities.PLNPayment{
			ID:                 "latest",
			Date:               time.Now(),
			Status:             entities.PaymentStatusApproved,
			ProviderPayloadRaw: json.RawMessage(`{"card":{"last_four_digits":"4242"}}`),
			ProviderPayload:    map[string]interface{}{"card": map[string]interface{}{"last_four_digits": "4242"}},
		}
		uc.EXPECT().ListByReference(gomock.Any(), "PLN-2026-ABC").Return([]entities.PLNPayment{old, latest}, nil)

		w := serve(newPaymentRouter(uc, false), http.MethodGet, "/v1/pln/payments/PLN-2026-ABC", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "latest", body["payment_id"])
		assert.NotContains(t, body, "mp_payload")
		assert.NotContains(t, w.Body.String(), "4242")
	})
}

func TestPLNPaymentHandler_GetPayment(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PLNPayment{}, usecase.ErrPaymentNotFound)

		w := serve(newPaymentRouter(uc, false), http.MethodGet, "/v1/admin/pln/payments/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("admin view keeps provider payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNPaymentUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.PLNPayment{
			ID:                 "pay-1",
			Status:             entities.PaymentStatusApproved,
			ProviderPayloadRaw: json.RawMessage(`{"id":1}`),
		}, nil)

		w := serve(newPaymentRouter(uc, false), http.MethodGet, "/v1/admin/pln/payments/pay-1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mp_payload_raw":"{\"id\":1}"`)
	})
}

func TestReadMPPayload(t *testing.T) {
	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	_, err := readMPPayload(ctxReadErr)
	assert.Error(t, err)

	_, err = readMPPayload(makeCtx("{invalid"))
	assert.Error(t, err)

	payload, err := readMPPayload(makeCtx("   "))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(payload))

	_, err = readMPPayload(makeCtx(`{"mp_payload":null}`))
	assert.Error(t, err)

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(payload))

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"visa"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"payment_method_id":"visa"}`, string(payload))
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidReferenceID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrApplicationNotFound, http.StatusNotFound},
		{usecase.ErrApplicationNotAwaitingPayment, http.StatusConflict},
		{usecase.ErrPaymentDeadlinePassed, http.StatusConflict},
		{usecase.ErrPaymentNotApproved, http.StatusPaymentRequired},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrApplicationConflict, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, mapPaymentError(tc.err).HTTPStatus, "err %v", tc.err)
	}
}
