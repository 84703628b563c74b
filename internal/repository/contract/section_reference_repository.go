package contract

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SectionReferenceRepository interface {
	Create(ctx context.Context, ref *entity.SectionReference) error
	Delete(ctx context.Context, applicationId uuid.UUID, sectionKey string, groupId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionReference, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionReference, error)
}
