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

type DocumentGroupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentGroupRepository(db *gorm.DB) contract.DocumentGroupRepository {
	return &DocumentGroupRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentGroupRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentGroupRepositoryImpl) Create(ctx context.Context, group *entity.DocumentGroup) error {
	m := r.mapper.ToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*group = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentGroupRepositoryImpl) Update(ctx context.Context, group *entity.DocumentGroup) error {
	m := r.mapper.ToModel(group)
	// Files are managed through AddFile/MarkFileRemoved; skip the association
	// here so Save does not resurrect or duplicate file rows.
	if err := r.db.WithContext(ctx).Omit("Files").Save(m).Error; err != nil {
		return err
	}
	return nil
}

func (r *DocumentGroupRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentGroup, error) {
	var m model.DocumentGroup
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentGroupRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentGroup, error) {
	var models []*model.DocumentGroup
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *DocumentGroupRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DocumentGroup{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DocumentGroupRepositoryImpl) AddFile(ctx context.Context, file *entity.DocumentFile) error {
	m := &model.DocumentFile{
		Id:        file.Id,
		GroupId:   file.GroupId,
		FileName:  file.FileName,
		PageCount: file.PageCount,
		Removed:   file.Removed,
		CreatedAt: file.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = r.mapper.FileToEntity(m)
	return nil
}

func (r *DocumentGroupRepositoryImpl) MarkFileRemoved(ctx context.Context, groupId, fileId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.DocumentFile{}).
		Where("id = ? AND group_id = ?", fileId, groupId).
		Update("removed", true).Error
}
