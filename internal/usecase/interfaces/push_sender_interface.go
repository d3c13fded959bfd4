package interfaces

import "context"

// PushMessage is a provider-neutral notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// IPushSender delivers a message to device tokens (e.g. Firebase Cloud Messaging).
//
// invalidTokens lists tokens the provider reported as unregistered; the caller
// deactivates them.
type IPushSender interface {
	Send(ctx context.Context, tokens []string, msg PushMessage) (invalidTokens []string, err error)
}
