package entities

import "time"

// PushToken is a device registration for Firebase Cloud Messaging. A token
// receives status updates for the one application it was bound to.
//
// Storage model (DynamoDB):
//   - PK: token
//   - GSI1 (reference_id-index): reference_id
type PushToken struct {
	Token       string    `json:"token"`
	Platform    string    `json:"platform"`
	ReferenceID string    `json:"reference_id"`
	Active      bool      `json:"active"`
	LastUsed    time.Time `json:"last_used"`
	CreatedAt   time.Time `json:"created_at"`
}
