package interfaces

import (
	"context"
	"errors"
	"roads_authority/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored item changed since it was read.
var ErrVersionConflict = errors.New("item was modified concurrently")

// IPLNApplicationRepository abstracts DynamoDB persistence for PLNApplication.
//
// Lookups return the zero value and a nil error when nothing matches.
// Save uses UpdatedAt of the previously read item as an optimistic lock.
type IPLNApplicationRepository interface {
	Create(ctx context.Context, a entities.PLNApplication) (entities.PLNApplication, error)
	GetByID(ctx context.Context, id string) (entities.PLNApplication, error)
	GetByReference(ctx context.Context, referenceID string) (entities.PLNApplication, error)
	ListByEmail(ctx context.Context, email string) ([]entities.PLNApplication, error)
	ListByStatus(ctx context.Context, status entities.ApplicationStatus) ([]entities.PLNApplication, error)
	List(ctx context.Context) ([]entities.PLNApplication, error)
	Save(ctx context.Context, a entities.PLNApplication, previous entities.PLNApplication) (entities.PLNApplication, error)
}
