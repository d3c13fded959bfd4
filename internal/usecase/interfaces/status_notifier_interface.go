package interfaces

import (
	"context"
	"roads_authority/internal/domain/entities"
)

// IStatusNotifier tells an applicant that their application changed status.
type IStatusNotifier interface {
	NotifyApplicationStatus(ctx context.Context, a entities.PLNApplication) error
}
