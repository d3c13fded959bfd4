package handlers

import (
	"log"
	"net/http"
	"time"

	"roads_authority/internal/adapter/http/dto/request"
	"roads_authority/internal/adapter/http/dto/response"
	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PLNApplicationHandler serves the personalised number plate workflow.
type PLNApplicationHandler struct {
	usecase          usecase.IPLNApplicationUseCase
	referenceLimiter middleware.Limiter
	now              func() time.Time
}

func NewPLNApplicationHandler(uc usecase.IPLNApplicationUseCase) *PLNApplicationHandler {
	return &PLNApplicationHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// WithReferenceLimiter caps tracking attempts per reference ID regardless of
// the caller's address.
func (h *PLNApplicationHandler) WithReferenceLimiter(l middleware.Limiter) *PLNApplicationHandler {
	h.referenceLimiter = l
	return h
}

// Submit godoc
// @Summary      Submit a PLN application
// @Tags         pln
// @Accept       json
// @Produce      json
// @Param        body  body      request.SubmitApplicationRequest  true  "Application form"
// @Success      201   {object}  response.SubmitApplicationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /pln/applications [post]
func (h *PLNApplicationHandler) Submit(c *gin.Context) {
	var payload request.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pln][handler] submit invalid payload err=%v", err)
		writeError(c, invalidInput("INVALID_APPLICATION", err))
		return
	}

	submitted, err := h.usecase.Submit(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[pln][handler] submit failed err=%v", err)
		writeError(c, mapApplicationError(err))
		return
	}
	log.Printf("[pln][handler] submit success id=%s reference_id=%s", submitted.Application.ID, submitted.Application.ReferenceID)
	c.JSON(http.StatusCreated, response.FromSubmittedApplication(submitted))
}

// Track godoc
// @Summary      Track a PLN application
// @Description  Secret is the PIN issued on submission or the applicant's ID number.
// @Tags         pln
// @Accept       json
// @Produce      json
// @Param        body  body      request.TrackApplicationRequest  true  "Reference and secret"
// @Success      200   {object}  response.TrackingResponse
// @Failure      401   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /pln/applications/track [post]
func (h *PLNApplicationHandler) Track(c *gin.Context) {
	var payload request.TrackApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if !allowReference(c, h.referenceLimiter, payload.ReferenceID) {
		writeError(c, errTooManyAttempts)
		return
	}

	view, err := h.usecase.Track(c.Request.Context(), payload.ReferenceID, payload.Secret)
	if err != nil {
		log.Printf("[pln][handler] track failed reference_id=%s err=%v", payload.ReferenceID, err)
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTrackingView(view))
}

// ListByEmail returns the applications submitted with an email address.
func (h *PLNApplicationHandler) ListByEmail(c *gin.Context) {
	list, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(list, h.now()))
}

// List godoc
// @Summary      List PLN applications
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  false  "Status (any accepted spelling)"
// @Param        search  query     string  false  "Reference, surname, business, ID, phone or email"
// @Param        from    query     string  false  "Created on or after (YYYY-MM-DD)"
// @Param        to      query     string  false  "Created on or before (YYYY-MM-DD)"
// @Param        page    query     int     false  "Page"
// @Param        limit   query     int     false  "Page size"
// @Success      200     {object}  response.ApplicationPageResponse
// @Router       /admin/pln/applications [get]
func (h *PLNApplicationHandler) List(c *gin.Context) {
	var q request.ListApplicationsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	page, err := h.usecase.List(c.Request.Context(), q.ToQuery())
	if err != nil {
		log.Printf("[pln][handler] list failed err=%v", err)
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplicationPage(page, h.now()))
}

func (h *PLNApplicationHandler) Get(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(a, h.now()))
}

// UpdateStatus godoc
// @Summary      Change an application's status
// @Description  APPROVED is recorded as PAYMENT_PENDING and starts the payment deadline.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                                  true  "Application id"
// @Param        body  body      request.UpdateApplicationStatusRequest  true  "New status"
// @Success      200   {object}  response.ApplicationResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /admin/pln/applications/{id}/status [patch]
func (h *PLNApplicationHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	id := c.Param("id")
	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.Status, middleware.AdminActor(c), payload.Comment)
	if err != nil {
		log.Printf("[pln][handler] status update failed id=%s status=%s err=%v", id, payload.Status, err)
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(updated, h.now()))
}

func (h *PLNApplicationHandler) MarkPaymentReceived(c *gin.Context) {
	var payload request.MarkPaymentReceivedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
	}
	updated, err := h.usecase.MarkPaymentReceived(c.Request.Context(), c.Param("id"), middleware.AdminActor(c), payload.PaymentReference)
	if err != nil {
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(updated, h.now()))
}

func (h *PLNApplicationHandler) OrderPlates(c *gin.Context) {
	updated, err := h.usecase.OrderPlates(c.Request.Context(), c.Param("id"), middleware.AdminActor(c))
	if err != nil {
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(updated, h.now()))
}

func (h *PLNApplicationHandler) MarkReadyForCollection(c *gin.Context) {
	updated, err := h.usecase.MarkReadyForCollection(c.Request.Context(), c.Param("id"), middleware.AdminActor(c))
	if err != nil {
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(updated, h.now()))
}

// ExpireOverdue runs the payment deadline sweep on demand.
func (h *PLNApplicationHandler) ExpireOverdue(c *gin.Context) {
	expired, err := h.usecase.ExpireOverdue(c.Request.Context(), h.now())
	if err != nil {
		log.Printf("[pln][handler] expire overdue failed expired=%d err=%v", expired, err)
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": expired})
}

// Dashboard godoc
// @Summary      PLN dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /admin/pln/dashboard [get]
func (h *PLNApplicationHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.DashboardStats(c.Request.Context())
	if err != nil {
		log.Printf("[pln][handler] dashboard failed err=%v", err)
		writeError(c, mapApplicationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats, h.now()))
}
