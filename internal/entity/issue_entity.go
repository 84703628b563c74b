package entity

import (
	"time"

	"github.com/google/uuid"

	"visa-casework-be/pkg/checklist"
)

// QualityIssue is a stored quality finding linked to a checklist item. Issues
// are created by analysis, mutated only by resolve/forward actions and never
// deleted.
type QualityIssue struct {
	Id                    uuid.UUID
	ApplicationId         uuid.UUID
	Severity              checklist.IssueSeverity
	Title                 string
	Description           string
	LinkedChecklistItemId string
	Status                checklist.IssueStatus
	SuggestedAction       string
	Forwarded             bool
	ForwardNote           string
	ForwardedAt           *time.Time
	ResolvedAt            *time.Time
	CreatedAt             time.Time
}

// ToEngine converts the stored issue into the engine's correlator shape.
func (i *QualityIssue) ToEngine() checklist.Issue {
	return checklist.Issue{
		Id:                    i.Id,
		Severity:              i.Severity,
		Title:                 i.Title,
		Description:           i.Description,
		LinkedChecklistItemId: i.LinkedChecklistItemId,
		Status:                i.Status,
		SuggestedAction:       i.SuggestedAction,
	}
}

// IssuesToEngine converts stored issues for engine calls.
func IssuesToEngine(issues []*QualityIssue) []checklist.Issue {
	out := make([]checklist.Issue, len(issues))
	for i, issue := range issues {
		out[i] = issue.ToEngine()
	}
	return out
}
