package unitofwork

import (
	"context"
	"fmt"

	"visa-casework-be/internal/repository/contract"
	"visa-casework-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // The active transaction (or just db if no tx) - actually we should keep track if we are in tx
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) ApplicationRepository() contract.ApplicationRepository {
	return implementation.NewApplicationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentGroupRepository() contract.DocumentGroupRepository {
	return implementation.NewDocumentGroupRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QuestionnaireAnswerRepository() contract.QuestionnaireAnswerRepository {
	return implementation.NewQuestionnaireAnswerRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FieldOverrideRepository() contract.FieldOverrideRepository {
	return implementation.NewFieldOverrideRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SectionReferenceRepository() contract.SectionReferenceRepository {
	return implementation.NewSectionReferenceRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AnalysisSnapshotRepository() contract.AnalysisSnapshotRepository {
	return implementation.NewAnalysisSnapshotRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QualityIssueRepository() contract.QualityIssueRepository {
	return implementation.NewQualityIssueRepository(u.getDB())
}
