package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"roads_authority/internal/adapter/http/dto/response"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase"
	"roads_authority/pkg"

	"github.com/gin-gonic/gin"
)

// PLNPaymentHandler takes the plate fee for applications awaiting payment.
type PLNPaymentHandler struct {
	usecase  usecase.IPLNPaymentUseCase
	mockMode func() bool
}

func NewPLNPaymentHandler(uc usecase.IPLNPaymentUseCase) *PLNPaymentHandler {
	return &PLNPaymentHandler{usecase: uc, mockMode: usecase.IsPaymentGatewayMockEnabled}
}

// CreatePayment godoc
// @Summary      Pay the PLN fee
// @Description  Body is a Mercado Pago payment request, bare or wrapped in mp_payload. Amount and reference are filled in by the service.
// @Tags         pln
// @Accept       json
// @Produce      json
// @Param        reference_id  path      string                          true  "PLN reference id"
// @Param        body          body      request.PLNPaymentCreateRequest  false  "Mercado Pago payload"
// @Success      200           {object}  response.PublicPaymentResponse
// @Failure      402           {object}  pkg.HTTPError
// @Failure      409           {object}  pkg.HTTPError
// @Router       /pln/payments/{reference_id} [post]
func (h *PLNPaymentHandler) CreatePayment(c *gin.Context) {
	referenceID := c.Param("reference_id")
	log.Printf("[payment][handler] create start reference_id=%s", referenceID)
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode() {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload reference_id=%s err=%v", referenceID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload reference_id=%s err=%v", referenceID, err)
			writeError(c, errInvalidRequest)
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), referenceID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed reference_id=%s err=%v", referenceID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success reference_id=%s payment_id=%s status=%s", referenceID, created.ID, created.Status)
	c.JSON(http.StatusOK, response.FromPublicPayment(created))
}

// GetLatestPayment returns the most recent payment for an application without
// the provider payload.
func (h *PLNPaymentHandler) GetLatestPayment(c *gin.Context) {
	referenceID := c.Param("reference_id")
	payments, err := h.usecase.ListByReference(c.Request.Context(), referenceID)
	if err != nil {
		log.Printf("[payment][handler] get-by-reference failed reference_id=%s err=%v", referenceID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	latest, ok := entities.LatestPayment(payments)
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicPayment(latest))
}

func (h *PLNPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPLNPayment(p))
}

// readMPPayload accepts an empty body, a bare Mercado Pago request, or one
// wrapped in {"mp_payload": ...}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if w := strings.TrimSpace(string(wrapped)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
