package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/model"
	"visa-casework-be/pkg/checklist"
)

// issueMetadata is the jsonb payload carried on forwarded issues.
type issueMetadata struct {
	ForwardNote string `json:"forward_note,omitempty"`
}

type IssueMapper struct{}

func NewIssueMapper() *IssueMapper {
	return &IssueMapper{}
}

func (m *IssueMapper) ToEntity(i *model.QualityIssue) *entity.QualityIssue {
	if i == nil {
		return nil
	}

	var meta issueMetadata
	if len(i.Metadata) > 0 {
		_ = json.Unmarshal(i.Metadata, &meta)
	}

	return &entity.QualityIssue{
		Id:                    i.Id,
		ApplicationId:         i.ApplicationId,
		Severity:              checklist.IssueSeverity(i.Severity),
		Title:                 i.Title,
		Description:           i.Description,
		LinkedChecklistItemId: i.LinkedChecklistItemId,
		Status:                checklist.IssueStatus(i.Status),
		SuggestedAction:       i.SuggestedAction,
		Forwarded:             i.Forwarded,
		ForwardNote:           meta.ForwardNote,
		ForwardedAt:           i.ForwardedAt,
		ResolvedAt:            i.ResolvedAt,
		CreatedAt:             i.CreatedAt,
	}
}

func (m *IssueMapper) ToModel(i *entity.QualityIssue) *model.QualityIssue {
	if i == nil {
		return nil
	}

	var metadata datatypes.JSON
	if i.ForwardNote != "" {
		raw, _ := json.Marshal(issueMetadata{ForwardNote: i.ForwardNote})
		metadata = datatypes.JSON(raw)
	}

	return &model.QualityIssue{
		Id:                    i.Id,
		ApplicationId:         i.ApplicationId,
		Severity:              string(i.Severity),
		Title:                 i.Title,
		Description:           i.Description,
		LinkedChecklistItemId: i.LinkedChecklistItemId,
		Status:                string(i.Status),
		SuggestedAction:       i.SuggestedAction,
		Forwarded:             i.Forwarded,
		ForwardedAt:           i.ForwardedAt,
		ResolvedAt:            i.ResolvedAt,
		Metadata:              metadata,
		CreatedAt:             i.CreatedAt,
	}
}

func (m *IssueMapper) ToEntities(issues []*model.QualityIssue) []*entity.QualityIssue {
	entities := make([]*entity.QualityIssue, len(issues))
	for i, issue := range issues {
		entities[i] = m.ToEntity(issue)
	}
	return entities
}
