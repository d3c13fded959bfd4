package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PLNPayment is the fee payment for an approved PLN application.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (reference_id-index): reference_id
//
// MercadoPago payload:
//   - ProviderPayloadRaw keeps the original provider body (JSON) for audit.
//   - ProviderPayload is the parsed representation, useful for querying/debugging.
type PLNPayment struct {
	ID          string        `json:"id"`
	ReferenceID string        `json:"reference_id"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// LatestPayment returns the most recent payment, or false when there are none.
func LatestPayment(payments []PLNPayment) (PLNPayment, bool) {
	if len(payments) == 0 {
		return PLNPayment{}, false
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, true
}
