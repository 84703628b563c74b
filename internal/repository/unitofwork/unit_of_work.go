package unitofwork

import (
	"context"

	"visa-casework-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ApplicationRepository() contract.ApplicationRepository
	DocumentGroupRepository() contract.DocumentGroupRepository
	QuestionnaireAnswerRepository() contract.QuestionnaireAnswerRepository
	FieldOverrideRepository() contract.FieldOverrideRepository
	SectionReferenceRepository() contract.SectionReferenceRepository
	AnalysisSnapshotRepository() contract.AnalysisSnapshotRepository
	QualityIssueRepository() contract.QualityIssueRepository
}
