package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"roads_authority/internal/adapter/http/handlers/mocks"
	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(h *NotificationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/notifications/tokens", h.RegisterToken)
	r.DELETE("/v1/notifications/tokens/:token", h.UnregisterToken)
	return r
}

func TestNotificationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockINotificationUseCase(ctrl)
	uc.EXPECT().RegisterToken(gomock.Any(), "fcm-1", "android", "PLN-2026-ABC", "04821").
		Return(entities.PushToken{Token: "fcm-1", Platform: "android", ReferenceID: "PLN-2026-ABC", Active: true}, nil)
	uc.EXPECT().UnregisterToken(gomock.Any(), "fcm-1").Return(nil)
	uc.EXPECT().UnregisterToken(gomock.Any(), "fcm-2").Return(errors.New("dynamo down"))
	r := newNotificationRouter(NewNotificationHandler(uc))

	w := serve(r, http.MethodPost, "/v1/notifications/tokens", `{"token":"fcm-1","platform":"android","reference_id":"PLN-2026-ABC","secret":"04821"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)

	w = serve(r, http.MethodPost, "/v1/notifications/tokens", `{"token":"fcm-1","platform":"blackberry","reference_id":"PLN-2026-ABC","secret":"04821"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/v1/notifications/tokens/fcm-1", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodDelete, "/v1/notifications/tokens/fcm-2", "").Code)
	assert.Equal(t, http.StatusBadRequest, mapNotificationError(usecase.ErrInvalidPushToken).HTTPStatus)
}

func TestNotificationHandler_RegisterRequiresApplicationSecret(t *testing.T) {
	t.Run("email alone is not enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := newNotificationRouter(NewNotificationHandler(uc))

		w := serve(r, http.MethodPost, "/v1/notifications/tokens", `{"token":"fcm-1","platform":"android","email":"victim@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().RegisterToken(gomock.Any(), "fcm-1", "android", "PLN-2026-ABC", "00000").
			Return(entities.PushToken{}, usecase.ErrInvalidTrackingSecret)
		r := newNotificationRouter(NewNotificationHandler(uc))

		w := serve(r, http.MethodPost, "/v1/notifications/tokens", `{"token":"fcm-1","platform":"android","reference_id":"PLN-2026-ABC","secret":"00000"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TRACKING_SECRET")
	})

	t.Run("attempts share the reference quota", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockINotificationUseCase(ctrl)
		uc.EXPECT().RegisterToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.PushToken{}, usecase.ErrInvalidTrackingSecret).Times(1)
		h := NewNotificationHandler(uc).WithReferenceLimiter(middleware.NewMemoryLimiter(1, time.Hour))
		r := newNotificationRouter(h)

		body := `{"token":"fcm-1","platform":"android","reference_id":"PLN-2026-ABC","secret":"00000"}`
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/v1/notifications/tokens", body).Code)
		assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/v1/notifications/tokens", body).Code)
	})
}
