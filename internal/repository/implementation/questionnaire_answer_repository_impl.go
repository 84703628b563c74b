package implementation

import (
	"context"
	"errors"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/mapper"
	"visa-casework-be/internal/model"
	"visa-casework-be/internal/repository/contract"
	"visa-casework-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionnaireAnswerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuestionnaireMapper
}

func NewQuestionnaireAnswerRepository(db *gorm.DB) contract.QuestionnaireAnswerRepository {
	return &QuestionnaireAnswerRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuestionnaireMapper(),
	}
}

func (r *QuestionnaireAnswerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QuestionnaireAnswerRepositoryImpl) Upsert(ctx context.Context, answer *entity.QuestionnaireAnswer) error {
	m := r.mapper.ToModel(answer)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*answer = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuestionnaireAnswerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireAnswer, error) {
	var m model.QuestionnaireAnswer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QuestionnaireAnswerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuestionnaireAnswer, error) {
	var models []*model.QuestionnaireAnswer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
