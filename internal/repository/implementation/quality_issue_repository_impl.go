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
)

type QualityIssueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.IssueMapper
}

func NewQualityIssueRepository(db *gorm.DB) contract.QualityIssueRepository {
	return &QualityIssueRepositoryImpl{
		db:     db,
		mapper: mapper.NewIssueMapper(),
	}
}

func (r *QualityIssueRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *QualityIssueRepositoryImpl) Create(ctx context.Context, issue *entity.QualityIssue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *QualityIssueRepositoryImpl) Update(ctx context.Context, issue *entity.QualityIssue) error {
	m := r.mapper.ToModel(issue)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*issue = *r.mapper.ToEntity(m)
	return nil
}

func (r *QualityIssueRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QualityIssue, error) {
	var m model.QualityIssue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QualityIssueRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QualityIssue, error) {
	var models []*model.QualityIssue
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
