package contract

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentGroupRepository interface {
	Create(ctx context.Context, group *entity.DocumentGroup) error
	Update(ctx context.Context, group *entity.DocumentGroup) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentGroup, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentGroup, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Files are owned by their group and never shared; removal is a soft flag.
	AddFile(ctx context.Context, file *entity.DocumentFile) error
	MarkFileRemoved(ctx context.Context, groupId, fileId uuid.UUID) error
}
