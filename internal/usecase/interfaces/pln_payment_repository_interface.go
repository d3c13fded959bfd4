package interfaces

import (
	"context"
	"roads_authority/internal/domain/entities"
)

// IPLNPaymentRepository abstracts DynamoDB persistence for PLNPayment.

type IPLNPaymentRepository interface {
	Create(ctx context.Context, p entities.PLNPayment) (entities.PLNPayment, error)
	GetByID(ctx context.Context, id string) (entities.PLNPayment, error)
	ListByReferenceID(ctx context.Context, referenceID string) ([]entities.PLNPayment, error)
}
