package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"roads_authority/internal/adapter/http/handlers/mocks"
	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC)

const submitBody = `{
	"id_type": "Namibia ID-doc",
	"id_number": "85010112345",
	"surname": "Shikongo",
	"initials": "T",
	"postal_address": {"line1": "PO Box 1234"},
	"street_address": {"line1": "12 Independence Ave"},
	"email": "t.shikongo@example.com",
	"plate_format": "Standard",
	"quantity": 1,
	"plate_choices": [
		{"text": "NAMIB1", "meaning": "Home"},
		{"text": "DUNE7", "meaning": "Sossusvlei"},
		{"text": "ETOSHA", "meaning": "Park"}
	],
	"declaration_accepted": true,
	"declaration_place": "Windhoek"
}`

func newApplicationRouter(uc usecase.IPLNApplicationUseCase) *gin.Engine {
	h := NewPLNApplicationHandler(uc)
	h.now = func() time.Time { return handlerNow }
	asAdmin := func(c *gin.Context) {
		c.Set(middleware.ContextAdminKey, "officer@ra.org.na")
		c.Next()
	}

	r := gin.New()
	r.POST("/v1/pln/applications", h.Submit)
	r.POST("/v1/pln/applications/track", h.Track)
	admin := r.Group("/v1/admin/pln", asAdmin)
	admin.GET("/applications", h.List)
	admin.GET("/applications/by-email", h.ListByEmail)
	admin.GET("/applications/:id", h.Get)
	admin.PATCH("/applications/:id/status", h.UpdateStatus)
	admin.POST("/applications/:id/payment-received", h.MarkPaymentReceived)
	admin.POST("/applications/:id/order-plates", h.OrderPlates)
	admin.POST("/applications/:id/ready", h.MarkReadyForCollection)
	admin.POST("/expire-overdue", h.ExpireOverdue)
	admin.GET("/dashboard", h.Dashboard)
	return r
}

func TestPLNApplicationHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cmd usecase.SubmitApplicationCommand) (usecase.SubmittedApplication, error) {
			assert.Equal(t, "Shikongo", cmd.Surname)
			assert.Len(t, cmd.PlateChoices, 3)
			assert.True(t, cmd.DeclarationAccepted)
			return usecase.SubmittedApplication{
				Application: entities.PLNApplication{ID: "app-1", ReferenceID: "PLN-2026-ABCDEF123456", Status: entities.ApplicationStatusSubmitted, CreatedAt: handlerNow},
				TrackingPIN: "04821",
			}, nil
		})

		w := serve(newApplicationRouter(uc), http.MethodPost, "/v1/pln/applications", submitBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "PLN-2026-ABCDEF123456", body["reference_id"])
		assert.Equal(t, "04821", body["tracking_pin"])
		assert.Equal(t, "SUBMITTED", body["status"])
	})

	t.Run("plate text rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)

		body := `{"id_type":"Namibia ID-doc","surname":"S","initials":"T","postal_address":{"line1":"a"},"street_address":{"line1":"b"},
			"plate_format":"Standard","quantity":1,"declaration_place":"Windhoek",
			"plate_choices":[{"text":"WAY-TOO-LONG","meaning":"x"},{"text":"B","meaning":"y"},{"text":"C","meaning":"z"}]}`
		w := serve(newApplicationRouter(uc), http.MethodPost, "/v1/pln/applications", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_APPLICATION")
	})

	t.Run("usecase validation message is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.SubmittedApplication{}, fmt.Errorf("%w: declaration must be accepted", usecase.ErrInvalidApplication))

		w := serve(newApplicationRouter(uc), http.MethodPost, "/v1/pln/applications", submitBody)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "declaration must be accepted")
	})
}

func TestPLNApplicationHandler_Track(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "wrong secret", err: usecase.ErrInvalidTrackingSecret, want: http.StatusUnauthorized},
		{name: "unknown reference", err: usecase.ErrApplicationNotFound, want: http.StatusNotFound},
		{name: "storage error", err: errors.New("dynamo down"), want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
			uc.EXPECT().Track(gomock.Any(), "pln-2026-abc", "12345").Return(usecase.TrackingView{}, tc.err)

			w := serve(newApplicationRouter(uc), http.MethodPost, "/v1/pln/applications/track", `{"reference_id":"pln-2026-abc","secret":"12345"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}

	t.Run("missing secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)

		w := serve(newApplicationRouter(uc), http.MethodPost, "/v1/pln/applications/track", `{"reference_id":"PLN-2026-ABC"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		uc.EXPECT().Track(gomock.Any(), "PLN-2026-ABC", "12345").Return(usecase.TrackingView{
			ReferenceID:         "PLN-2026-ABC",
			Status:              entities.ApplicationStatusPaymentPending,
			StatusKnown:         true,
			StatusLabel:         entities.Label("PAYMENT_PENDING"),
			EstimatedProcessing: usecase.EstimatedProcessingTime,
			AmountDue:           2000,
		}, nil)

		w := serve(newApplicationRouter(uc), http.MethodPost, "/v1/pln/applications/track", `{"reference_id":"PLN-2026-ABC","secret":"12345"}`)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "PAYMENT_PENDING", body["status"])
		assert.Equal(t, float64(2000), body["amount_due"])
		assert.Equal(t, usecase.EstimatedProcessingTime, body["estimated_processing"])
	})
}

func TestPLNApplicationHandler_TrackLimitedPerReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
	uc.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TrackingView{}, usecase.ErrInvalidTrackingSecret).Times(2)

	h := NewPLNApplicationHandler(uc).WithReferenceLimiter(middleware.NewMemoryLimiter(2, time.Hour))
	r := gin.New()
	r.POST("/v1/pln/applications/track", h.Track)

	for _, ref := range []string{"PLN-2026-ABC", " pln-2026-abc "} {
		w := serve(r, http.MethodPost, "/v1/pln/applications/track", `{"reference_id":"`+ref+`","secret":"00000"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w := serve(r, http.MethodPost, "/v1/pln/applications/track", `{"reference_id":"Pln-2026-Abc","secret":"00001"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestPLNApplicationHandler_ListByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
	uc.EXPECT().ListByEmail(gomock.Any(), "a@b.na").Return([]entities.PLNApplication{{ID: "app-1", Status: "Under Review"}}, nil)

	w := serve(newApplicationRouter(uc), http.MethodGet, "/v1/admin/pln/applications/by-email?email=a@b.na", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "UNDER_REVIEW", body[0]["status"])
}

func TestPLNApplicationHandler_AdminList(t *testing.T) {
	t.Run("query forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, q usecase.ListApplicationsQuery) (usecase.ApplicationPage, error) {
			assert.Equal(t, "submitted", q.Status)
			assert.Equal(t, 2, q.Page)
			require.NotNil(t, q.From)
			assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *q.From)
			return usecase.ApplicationPage{Total: 11, Page: 2, Limit: 10, TotalPages: 2}, nil
		})

		w := serve(newApplicationRouter(uc), http.MethodGet, "/v1/admin/pln/applications?status=submitted&page=2&from=2026-01-01", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalPages":2`)
		assert.Contains(t, w.Body.String(), `"applications":[]`)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)

		w := serve(newApplicationRouter(uc), http.MethodGet, "/v1/admin/pln/applications?from=01/01/2026", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPLNApplicationHandler_UpdateStatus(t *testing.T) {
	t.Run("actor comes from the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		deadline := handlerNow.Add(21 * 24 * time.Hour)
		uc.EXPECT().UpdateStatus(gomock.Any(), "app-1", "approved", "officer@ra.org.na", "all documents in order").
			Return(entities.PLNApplication{ID: "app-1", Status: entities.ApplicationStatusPaymentPending, PaymentDeadline: &deadline}, nil)

		w := serve(newApplicationRouter(uc), http.MethodPatch, "/v1/admin/pln/applications/app-1/status", `{"status":"approved","comment":"all documents in order"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"PAYMENT_PENDING"`)
		assert.Contains(t, w.Body.String(), `"payment_overdue":false`)
	})

	t.Run("transition rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "app-1", "SUBMITTED", gomock.Any(), "").
			Return(entities.PLNApplication{}, fmt.Errorf("%w: PAID -> SUBMITTED", usecase.ErrInvalidStatusTransition))

		w := serve(newApplicationRouter(uc), http.MethodPatch, "/v1/admin/pln/applications/app-1/status", `{"status":"SUBMITTED"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PAID -> SUBMITTED")
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
		uc.EXPECT().UpdateStatus(gomock.Any(), "app-1", "archived", gomock.Any(), "").
			Return(entities.PLNApplication{}, fmt.Errorf("%w: ARCHIVED", usecase.ErrUnknownStatus))

		w := serve(newApplicationRouter(uc), http.MethodPatch, "/v1/admin/pln/applications/app-1/status", `{"status":"archived"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPLNApplicationHandler_FixedTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
	actor := "officer@ra.org.na"
	uc.EXPECT().MarkPaymentReceived(gomock.Any(), "app-1", actor, "RCPT-77").Return(entities.PLNApplication{ID: "app-1", Status: entities.ApplicationStatusPaid}, nil)
	uc.EXPECT().MarkPaymentReceived(gomock.Any(), "app-2", actor, "").Return(entities.PLNApplication{ID: "app-2", Status: entities.ApplicationStatusPaid}, nil)
	uc.EXPECT().OrderPlates(gomock.Any(), "app-1", actor).Return(entities.PLNApplication{ID: "app-1", Status: entities.ApplicationStatusPlatesOrdered}, nil)
	uc.EXPECT().MarkReadyForCollection(gomock.Any(), "app-1", actor).Return(entities.PLNApplication{}, usecase.ErrApplicationConflict)
	r := newApplicationRouter(uc)

	w := serve(r, http.MethodPost, "/v1/admin/pln/applications/app-1/payment-received", `{"payment_reference":"RCPT-77"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/v1/admin/pln/applications/app-2/payment-received", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodPost, "/v1/admin/pln/applications/app-1/order-plates", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "PLATES_ORDERED")

	w = serve(r, http.MethodPost, "/v1/admin/pln/applications/app-1/ready", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPLNApplicationHandler_GetAndSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.PLNApplication{}, usecase.ErrApplicationNotFound)
	uc.EXPECT().ExpireOverdue(gomock.Any(), handlerNow).Return(3, nil)
	r := newApplicationRouter(uc)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/v1/admin/pln/applications/missing", "").Code)

	w := serve(r, http.MethodPost, "/v1/admin/pln/expire-overdue", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"expired":3}`, w.Body.String())
}

func TestPLNApplicationHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPLNApplicationUseCase(ctrl)
	uc.EXPECT().DashboardStats(gomock.Any()).Return(usecase.DashboardStats{
		Total:          4,
		ByStatus:       map[entities.ApplicationStatus]int{entities.ApplicationStatusSubmitted: 4},
		PaymentOverdue: 1,
	}, nil)

	w := serve(newApplicationRouter(uc), http.MethodGet, "/v1/admin/pln/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(4), body["total"])
	assert.Equal(t, float64(1), body["payment_overdue"])
}

func TestMapApplicationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidApplication, http.StatusBadRequest},
		{usecase.ErrInvalidApplicationID, http.StatusBadRequest},
		{usecase.ErrInvalidReferenceID, http.StatusBadRequest},
		{usecase.ErrUnknownStatus, http.StatusBadRequest},
		{usecase.ErrInvalidTrackingSecret, http.StatusUnauthorized},
		{usecase.ErrApplicationNotFound, http.StatusNotFound},
		{usecase.ErrInvalidStatusTransition, http.StatusConflict},
		{usecase.ErrApplicationConflict, http.StatusConflict},
		{usecase.ErrReferenceExhausted, http.StatusServiceUnavailable},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, mapApplicationError(tc.err).HTTPStatus, tc.err.Error())
	}
}
