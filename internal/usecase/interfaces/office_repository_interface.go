package interfaces

import (
	"context"
	"roads_authority/internal/domain/entities"
)

// IOfficeRepository abstracts DynamoDB persistence for Office.
// An empty region lists every office.
type IOfficeRepository interface {
	Create(ctx context.Context, o entities.Office) (entities.Office, error)
	GetByID(ctx context.Context, id string) (entities.Office, error)
	List(ctx context.Context, region string) ([]entities.Office, error)
	Update(ctx context.Context, o entities.Office) (entities.Office, error)
	Delete(ctx context.Context, id string) (bool, error)
}
