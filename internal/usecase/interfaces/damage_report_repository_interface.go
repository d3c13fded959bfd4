package interfaces

import (
	"context"
	"roads_authority/internal/domain/entities"
)

// IDamageReportRepository abstracts DynamoDB persistence for DamageReport.
type IDamageReportRepository interface {
	Create(ctx context.Context, r entities.DamageReport) (entities.DamageReport, error)
	GetByID(ctx context.Context, id string) (entities.DamageReport, error)
	ExistsReferenceCode(ctx context.Context, code string) (bool, error)
	ListByDeviceID(ctx context.Context, deviceID string) ([]entities.DamageReport, error)
	ListByEmail(ctx context.Context, email string) ([]entities.DamageReport, error)
	List(ctx context.Context) ([]entities.DamageReport, error)
	Update(ctx context.Context, r entities.DamageReport) (entities.DamageReport, error)
}
