package implementation

import (
	"context"
	"errors"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/mapper"
	"visa-casework-be/internal/model"
	"visa-casework-be/internal/repository/contract"
	"visa-casework-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SectionReferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewSectionReferenceRepository(db *gorm.DB) contract.SectionReferenceRepository {
	return &SectionReferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewReferenceMapper(),
	}
}

func (r *SectionReferenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SectionReferenceRepositoryImpl) Create(ctx context.Context, ref *entity.SectionReference) error {
	m := r.mapper.ToModel(ref)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*ref = *r.mapper.ToEntity(m)
	return nil
}

func (r *SectionReferenceRepositoryImpl) Delete(ctx context.Context, applicationId uuid.UUID, sectionKey string, groupId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("application_id = ? AND section_key = ? AND group_id = ?", applicationId, sectionKey, groupId).
		Delete(&model.SectionReference{}).Error
}

func (r *SectionReferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionReference, error) {
	var m model.SectionReference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SectionReferenceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionReference, error) {
	var models []*model.SectionReference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("position ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
