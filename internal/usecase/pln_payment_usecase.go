package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrApplicationNotAwaitingPayment  = errors.New("application is not awaiting payment")
	ErrPaymentDeadlinePassed          = errors.New("payment deadline has passed")
	ErrPaymentNotApproved             = errors.New("payment was not approved by the provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const paymentActor = "payment-gateway"

// paymentTarget is the part of the application workflow a payment touches.
type paymentTarget interface {
	GetByReference(ctx context.Context, referenceID string) (entities.PLNApplication, error)
	MarkPaymentReceived(ctx context.Context, id, actor, paymentReference string) (entities.PLNApplication, error)
}

// IPLNPaymentUseCase pays the plate fee for an application awaiting payment.
type IPLNPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, referenceID string, payload json.RawMessage) (entities.PLNPayment, error)
	GetByID(ctx context.Context, id string) (entities.PLNPayment, error)
	ListByReference(ctx context.Context, referenceID string) ([]entities.PLNPayment, error)
}

type PLNPaymentUseCase struct {
	repo         interfaces.IPLNPaymentRepository
	applications paymentTarget
	gateway      interfaces.IPaymentGateway
	fee          float64
	now          func() time.Time
}

var _ IPLNPaymentUseCase = (*PLNPaymentUseCase)(nil)

func NewPLNPaymentUseCase(repo interfaces.IPLNPaymentRepository, applications *PLNApplicationUseCase, gateway interfaces.IPaymentGateway, fee float64) *PLNPaymentUseCase {
	uc := &PLNPaymentUseCase{
		repo:    repo,
		gateway: gateway,
		fee:     fee,
		now:     func() time.Time { return time.Now().UTC() },
	}
	if applications != nil {
		uc.applications = applications
	}
	return uc
}

func (u *PLNPaymentUseCase) CreateAndApprove(ctx context.Context, referenceID string, payload json.RawMessage) (entities.PLNPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_reference_id=%q payload_len=%d", referenceID, len(payload))
	mockMode := IsPaymentGatewayMockEnabled()
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.PLNPayment{}, ErrInvalidReferenceID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload reference_id=%s", referenceID)
			return entities.PLNPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.PLNPayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.applications == nil {
		return entities.PLNPayment{}, errors.New("application workflow not configured")
	}

	app, err := u.applications.GetByReference(ctx, referenceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading application reference_id=%s err=%v", referenceID, err)
		return entities.PLNPayment{}, err
	}
	status := entities.NormalizeStatus(string(app.Status))
	if status != entities.ApplicationStatusPaymentPending {
		log.Printf("[payment][usecase] application not awaiting payment reference_id=%s status=%s", referenceID, status)
		return entities.PLNPayment{}, ErrApplicationNotAwaitingPayment
	}
	referenceID = app.ReferenceID

	previous, err := u.repo.ListByReferenceID(ctx, referenceID)
	if err != nil {
		log.Printf("[payment][usecase] failed listing payments reference_id=%s err=%v", referenceID, err)
		return entities.PLNPayment{}, err
	}
	if approved, ok := approvedPayment(previous); ok {
		log.Printf("[payment][usecase] fee already charged; settling application reference_id=%s payment_id=%s", referenceID, approved.ID)
		return u.settle(ctx, app, approved)
	}
	if app.PaymentOverdue(u.now()) {
		return entities.PLNPayment{}, ErrPaymentDeadlinePassed
	}

	payload, err = u.enrichPayload(payload, app, mockMode)
	if err != nil {
		return entities.PLNPayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway reference_id=%s", referenceID)
		providerPaymentID, providerStatus = strconv.FormatInt(u.now().UnixNano(), 10), "approved"
		providerResp, err = mockProviderResponse(payload, providerPaymentID, u.now())
		if err != nil {
			return entities.PLNPayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, chargeIdempotencyKey(referenceID, len(previous)), payload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed reference_id=%s err=%v", referenceID, err)
			return entities.PLNPayment{}, classifyGatewayError(err)
		}
	}
	log.Printf("[payment][usecase] payment gateway returned reference_id=%s provider_payment_id=%s provider_status=%s", referenceID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed reference_id=%s err=%v", referenceID, err)
	}

	p := entities.PLNPayment{
		ID:                 providerPaymentID,
		ReferenceID:        referenceID,
		Amount:             u.fee,
		Date:               u.now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed reference_id=%s payment_id=%s err=%v", referenceID, p.ID, err)
		return entities.PLNPayment{}, err
	}
	if created.Status != entities.PaymentStatusApproved {
		return created, ErrPaymentNotApproved
	}
	return u.settle(ctx, app, created)
}

// settle moves the application to PAID for an approved payment. A failure
// leaves the payment recorded, so the next attempt settles without charging.
func (u *PLNPaymentUseCase) settle(ctx context.Context, app entities.PLNApplication, p entities.PLNPayment) (entities.PLNPayment, error) {
	if _, err := u.applications.MarkPaymentReceived(ctx, app.ID, paymentActor, p.ID); err != nil {
		log.Printf("[payment][usecase] application update failed reference_id=%s payment_id=%s err=%v", app.ReferenceID, p.ID, err)
		return p, err
	}
	log.Printf("[payment][usecase] create-and-approve success reference_id=%s payment_id=%s", app.ReferenceID, p.ID)
	return p, nil
}

func approvedPayment(payments []entities.PLNPayment) (entities.PLNPayment, bool) {
	for _, p := range payments {
		if p.Status == entities.PaymentStatusApproved {
			return p, true
		}
	}
	return entities.PLNPayment{}, false
}

// chargeIdempotencyKey is stable across retries of the same attempt and
// changes once an attempt has been recorded, so a declined card can be
// retried with another one.
func chargeIdempotencyKey(referenceID string, attempt int) string {
	return fmt.Sprintf("pln-%s-%d", referenceID, attempt)
}

// enrichPayload links the payment to the application and fixes the amount to
// the configured fee.
func (u *PLNPaymentUseCase) enrichPayload(payload json.RawMessage, app entities.PLNApplication, mockMode bool) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return nil, ErrInvalidPaymentPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id reference_id=%s", app.ReferenceID)
			return nil, ErrInvalidPaymentPayload
		}
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap, app.Email)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer reference_id=%s", app.ReferenceID)
			return nil, ErrInvalidPaymentPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = app.ReferenceID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Personalised number plates %s", app.ReferenceID)
	}
	reqMap["transaction_amount"] = u.fee
	return json.Marshal(reqMap)
}

func mockProviderResponse(payload json.RawMessage, id string, at time.Time) (json.RawMessage, error) {
	resp := map[string]any{}
	_ = json.Unmarshal(payload, &resp)
	stamp := at.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = stamp
	resp["date_approved"] = stamp
	return json.Marshal(resp)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func (u *PLNPaymentUseCase) GetByID(ctx context.Context, id string) (entities.PLNPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PLNPayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PLNPayment{}, err
	}
	if p.ID == "" {
		return entities.PLNPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PLNPaymentUseCase) ListByReference(ctx context.Context, referenceID string) ([]entities.PLNPayment, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return nil, ErrInvalidReferenceID
	}
	return u.repo.ListByReferenceID(ctx, strings.ToUpper(referenceID))
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email from the application, then from the
// sandbox settings, when neither payer.id nor payer.email was sent.
func ensurePayerDefaults(m map[string]any, applicantEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case strings.TrimSpace(applicantEmail) != "":
		payer["email"] = strings.TrimSpace(applicantEmail)
	case strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")) != "":
		payer["email"] = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	case strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-"):
		payer["email"] = "test_user@testuser.com"
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	userID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if userID == "" || email == "" || strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

// IsPaymentGatewayMockEnabled reports whether PAYMENT_GATEWAY_MOCK or
// MERCADOPAGO_MOCK asks for simulated approvals.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
