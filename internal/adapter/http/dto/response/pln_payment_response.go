package response

import (
	"time"

	"roads_authority/internal/domain/entities"
)

// PublicPaymentResponse is what unauthenticated callers see of a payment.
type PublicPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ReferenceID string    `json:"reference_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
}

// PLNPaymentResponse adds the provider payload for back-office staff.
type PLNPaymentResponse struct {
	PublicPaymentResponse

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPublicPayment(p entities.PLNPayment) PublicPaymentResponse {
	return PublicPaymentResponse{
		PaymentID:   p.ID,
		ReferenceID: p.ReferenceID,
		Amount:      p.Amount,
		PaymentDate: p.Date,
		Status:      string(p.Status),
	}
}

func FromPLNPayment(p entities.PLNPayment) PLNPaymentResponse {
	return PLNPaymentResponse{
		PublicPaymentResponse: FromPublicPayment(p),
		MPPayloadRaw:          string(p.ProviderPayloadRaw),
		MPPayload:             p.ProviderPayload,
	}
}
