package implementation

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/mapper"
	"visa-casework-be/internal/model"
	"visa-casework-be/internal/repository/contract"
	"visa-casework-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FieldOverrideRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OverrideMapper
}

func NewFieldOverrideRepository(db *gorm.DB) contract.FieldOverrideRepository {
	return &FieldOverrideRepositoryImpl{
		db:     db,
		mapper: mapper.NewOverrideMapper(),
	}
}

func (r *FieldOverrideRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FieldOverrideRepositoryImpl) Upsert(ctx context.Context, override *entity.FieldOverride) error {
	m := r.mapper.ToModel(override)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "field_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*override = *r.mapper.ToEntity(m)
	return nil
}

func (r *FieldOverrideRepositoryImpl) Delete(ctx context.Context, applicationId uuid.UUID, fieldId string) error {
	return r.db.WithContext(ctx).
		Where("application_id = ? AND field_id = ?", applicationId, fieldId).
		Delete(&model.FieldOverride{}).Error
}

func (r *FieldOverrideRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldOverride, error) {
	var models []*model.FieldOverride
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
