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

type AnalysisSnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalysisMapper
}

func NewAnalysisSnapshotRepository(db *gorm.DB) contract.AnalysisSnapshotRepository {
	return &AnalysisSnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalysisMapper(),
	}
}

func (r *AnalysisSnapshotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnalysisSnapshotRepositoryImpl) Upsert(ctx context.Context, snapshot *entity.AnalysisSnapshot) error {
	m := r.mapper.SnapshotToModel(snapshot)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "application_id"}, {Name: "section_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"fingerprint", "analyzed_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*snapshot = *r.mapper.SnapshotToEntity(m)
	return nil
}

func (r *AnalysisSnapshotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSnapshot, error) {
	var m model.AnalysisSnapshot
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SnapshotToEntity(&m), nil
}
