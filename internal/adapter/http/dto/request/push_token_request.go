package request

// RegisterPushTokenRequest binds a device to an application. Secret is the
// tracking PIN or the applicant's ID number.
type RegisterPushTokenRequest struct {
	Token       string `json:"token" binding:"required"`
	Platform    string `json:"platform" binding:"required,oneof=ios android web"`
	ReferenceID string `json:"reference_id" binding:"required"`
	Secret      string `json:"secret" binding:"required"`
}
