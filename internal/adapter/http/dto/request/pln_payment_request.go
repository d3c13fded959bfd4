package request

import "encoding/json"

// PLNPaymentCreateRequest is the body of the pay-fee route.
//
// `mp_payload` is forwarded to Mercado Pago as-is; the service only fills in
// the amount, description and external reference. A bare Mercado Pago body
// without the envelope is accepted too.
type PLNPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
