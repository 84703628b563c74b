package contract

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/specification"
)

type QualityIssueRepository interface {
	Create(ctx context.Context, issue *entity.QualityIssue) error
	Update(ctx context.Context, issue *entity.QualityIssue) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QualityIssue, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QualityIssue, error)
}
