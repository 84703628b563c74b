package mapper

import (
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/model"
)

type AnalysisMapper struct{}

func NewAnalysisMapper() *AnalysisMapper {
	return &AnalysisMapper{}
}

func (m *AnalysisMapper) SnapshotToEntity(s *model.AnalysisSnapshot) *entity.AnalysisSnapshot {
	if s == nil {
		return nil
	}
	return &entity.AnalysisSnapshot{
		Id:            s.Id,
		ApplicationId: s.ApplicationId,
		SectionKey:    s.SectionKey,
		Fingerprint:   s.Fingerprint,
		AnalyzedAt:    s.AnalyzedAt,
	}
}

func (m *AnalysisMapper) SnapshotToModel(s *entity.AnalysisSnapshot) *model.AnalysisSnapshot {
	if s == nil {
		return nil
	}
	return &model.AnalysisSnapshot{
		Id:            s.Id,
		ApplicationId: s.ApplicationId,
		SectionKey:    s.SectionKey,
		Fingerprint:   s.Fingerprint,
		AnalyzedAt:    s.AnalyzedAt,
	}
}
