package interfaces

import (
	"context"
	"time"
)

// IFilePresigner issues time-limited download URLs for stored documents (S3).
type IFilePresigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}
