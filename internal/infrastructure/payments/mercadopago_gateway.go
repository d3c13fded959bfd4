package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"roads_authority/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/requester"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidPaymentAmount            = errors.New("transaction_amount must be positive")
)

// MercadoPagoGateway charges the PLN fee through the Mercado Pago payments API.
//
// In mock mode no SDK client is created; the payment use case simulates
// approvals itself and never reaches CreatePayment.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway] mock mode enabled; sdk client not created")
		return &MercadoPagoGateway{}, nil
	}
	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken, config.WithHTTPClient(idempotentRequester{next: &http.Client{Timeout: 30 * time.Second}}))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, idempotencyKey string, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	req, err := decodePaymentRequest(requestPayload)
	if err != nil {
		log.Printf("[payment][gateway] payload rejected err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create start external_reference=%s amount=%.2f", req.ExternalReference, req.TransactionAmount)

	resp, err := g.client.Create(withIdempotencyKey(ctx, idempotencyKey), req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed external_reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s status_detail=%s", resp.ID, resp.Status, resp.StatusDetail)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func decodePaymentRequest(payload json.RawMessage) (payment.Request, error) {
	var req payment.Request
	if err := json.Unmarshal(payload, &req); err != nil {
		return payment.Request{}, err
	}
	if req.TransactionAmount <= 0 {
		return payment.Request{}, ErrInvalidPaymentAmount
	}
	return req, nil
}

type idempotencyKeyCtx struct{}

func withIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

// idempotentRequester replaces the random X-Idempotency-Key the SDK sets on
// every POST with the caller's key, so retries of one charge are deduplicated
// by Mercado Pago.
type idempotentRequester struct {
	next requester.Requester
}

func (r idempotentRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyCtx{}).(string); ok && req.Method != http.MethodGet {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return r.next.Do(req)
}
