package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"roads_authority/internal/adapter/http/middleware"
	"roads_authority/internal/usecase"
	"roads_authority/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errTooManyAttempts = pkg.NewDomainErrorSimple("RATE_LIMITED", "too many requests, try again later", http.StatusTooManyRequests)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// allowReference spends one secret attempt against referenceID. Case and
// surrounding spaces do not open a new quota.
func allowReference(c *gin.Context, l middleware.Limiter, referenceID string) bool {
	if l == nil {
		return true
	}
	if l.Allow(c.Request.Context(), "ref:"+strings.ToUpper(strings.TrimSpace(referenceID))) {
		return true
	}
	log.Printf("[ratelimit][handler] reference over quota path=%s reference_id=%s", c.FullPath(), referenceID)
	return false
}

// invalidInput exposes the use case's validation message; it lists what the
// applicant has to fix.
func invalidInput(code string, err error) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApplication):
		return invalidInput("INVALID_APPLICATION", err)
	case errors.Is(err, usecase.ErrInvalidApplicationID), errors.Is(err, usecase.ErrInvalidReferenceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrUnknownStatus):
		return invalidInput("UNKNOWN_STATUS", err)
	case errors.Is(err, usecase.ErrInvalidTrackingSecret):
		return pkg.NewDomainErrorSimple("INVALID_TRACKING_SECRET", "Reference number and PIN or ID number do not match", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicationConflict):
		return pkg.NewDomainErrorSimple("APPLICATION_CONFLICT", "Application was changed by someone else, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrReferenceExhausted):
		return pkg.NewDomainError("REFERENCE_UNAVAILABLE", "Could not allocate a reference number, try again", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReferenceID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Online payment is not available", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicationNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_AWAITING_PAYMENT", "Application is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeadlinePassed):
		return pkg.NewDomainErrorSimple("PAYMENT_DEADLINE_PASSED", "Payment deadline has passed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, usecase.ErrApplicationConflict):
		return mapApplicationError(err)
	default:
		return internalError(err)
	}
}

func mapOfficeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOffice):
		return invalidInput("INVALID_OFFICE", err)
	case errors.Is(err, usecase.ErrInvalidOfficeID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrOfficeNotFound):
		return pkg.NewDomainErrorSimple("OFFICE_NOT_FOUND", "Office not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocument):
		return invalidInput("INVALID_DOCUMENT", err)
	case errors.Is(err, usecase.ErrInvalidDocumentKind):
		return invalidInput("INVALID_DOCUMENT_KIND", err)
	case errors.Is(err, usecase.ErrInvalidDocumentID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttachmentNotFound):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_FOUND", "Attachment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPresignerUnavailable):
		return pkg.NewDomainError("DOWNLOAD_UNAVAILABLE", "Document downloads are not available", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReport):
		return invalidInput("INVALID_REPORT", err)
	case errors.Is(err, usecase.ErrInvalidReportStatus):
		return invalidInput("INVALID_REPORT_STATUS", err)
	case errors.Is(err, usecase.ErrInvalidReportID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Damage report not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrReportStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrReferenceExhausted):
		return pkg.NewDomainError("REFERENCE_UNAVAILABLE", "Could not allocate a reference number, try again", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func mapNotificationError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidPushToken) {
		return invalidInput("INVALID_PUSH_TOKEN", err)
	}
	return mapApplicationError(err)
}
