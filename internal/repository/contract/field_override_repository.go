package contract

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FieldOverrideRepository interface {
	// Upsert writes the override for (application, field id), replacing any
	// previous value.
	Upsert(ctx context.Context, override *entity.FieldOverride) error
	Delete(ctx context.Context, applicationId uuid.UUID, fieldId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldOverride, error)
}
