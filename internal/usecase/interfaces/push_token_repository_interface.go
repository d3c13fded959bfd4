package interfaces

import (
	"context"
	"roads_authority/internal/domain/entities"
)

// IPushTokenRepository abstracts DynamoDB persistence for device push tokens.
type IPushTokenRepository interface {
	Upsert(ctx context.Context, t entities.PushToken) (entities.PushToken, error)
	ListActiveByReference(ctx context.Context, referenceID string) ([]entities.PushToken, error)
	Deactivate(ctx context.Context, token string) error
}
