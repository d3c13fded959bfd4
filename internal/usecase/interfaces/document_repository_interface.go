package interfaces

import (
	"context"
	"roads_authority/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for published documents.
type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error)
	Update(ctx context.Context, d entities.Document) (entities.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
}
