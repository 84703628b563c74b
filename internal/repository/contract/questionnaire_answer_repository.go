package contract

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/specification"
)

type QuestionnaireAnswerRepository interface {
	// Upsert writes the answer for (application, question), replacing any
	// previous value.
	Upsert(ctx context.Context, answer *entity.QuestionnaireAnswer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireAnswer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuestionnaireAnswer, error)
}
