package handlers

import (
	"log"
	"net/http"

	"roads_authority/internal/adapter/http/dto/request"
	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler registers devices for push notifications.
type NotificationHandler struct {
	usecase          usecase.INotificationUseCase
	referenceLimiter middleware.Limiter
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// WithReferenceLimiter shares the per-reference secret attempt quota with the
// tracking endpoint.
func (h *NotificationHandler) WithReferenceLimiter(l middleware.Limiter) *NotificationHandler {
	h.referenceLimiter = l
	return h
}

// RegisterToken godoc
// @Summary      Register a device for push notifications
// @Description  The device receives PLN status updates for the application. Secret is the tracking PIN or the applicant's ID number.
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterPushTokenRequest  true  "Device token"
// @Success      200   {object}  entities.PushToken
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /notifications/tokens [post]
func (h *NotificationHandler) RegisterToken(c *gin.Context) {
	var payload request.RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, invalidInput("INVALID_PUSH_TOKEN", err))
		return
	}
	if !allowReference(c, h.referenceLimiter, payload.ReferenceID) {
		writeError(c, errTooManyAttempts)
		return
	}
	registered, err := h.usecase.RegisterToken(c.Request.Context(), payload.Token, payload.Platform, payload.ReferenceID, payload.Secret)
	if err != nil {
		log.Printf("[push][handler] register failed platform=%s reference_id=%s err=%v", payload.Platform, payload.ReferenceID, err)
		writeError(c, mapNotificationError(err))
		return
	}
	c.JSON(http.StatusOK, registered)
}

func (h *NotificationHandler) UnregisterToken(c *gin.Context) {
	if err := h.usecase.UnregisterToken(c.Request.Context(), c.Param("token")); err != nil {
		writeError(c, mapNotificationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
