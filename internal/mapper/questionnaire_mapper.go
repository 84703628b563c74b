package mapper

import (
	"time"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/model"
)

type QuestionnaireMapper struct{}

func NewQuestionnaireMapper() *QuestionnaireMapper {
	return &QuestionnaireMapper{}
}

func (m *QuestionnaireMapper) ToEntity(a *model.QuestionnaireAnswer) *entity.QuestionnaireAnswer {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.QuestionnaireAnswer{
		Id:            a.Id,
		ApplicationId: a.ApplicationId,
		QuestionId:    a.QuestionId,
		Value:         a.Value,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *QuestionnaireMapper) ToModel(a *entity.QuestionnaireAnswer) *model.QuestionnaireAnswer {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.QuestionnaireAnswer{
		Id:            a.Id,
		ApplicationId: a.ApplicationId,
		QuestionId:    a.QuestionId,
		Value:         a.Value,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *QuestionnaireMapper) ToEntities(answers []*model.QuestionnaireAnswer) []*entity.QuestionnaireAnswer {
	entities := make([]*entity.QuestionnaireAnswer, len(answers))
	for i, a := range answers {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
