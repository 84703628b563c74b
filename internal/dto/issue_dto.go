package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueResponse struct {
	Id                    uuid.UUID  `json:"id"`
	Severity              string     `json:"severity"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	LinkedChecklistItemId string     `json:"linked_checklist_item_id"`
	Status                string     `json:"status"`
	SuggestedAction       string     `json:"suggested_action,omitempty"`
	Forwarded             bool       `json:"forwarded"`
	ForwardNote           string     `json:"forward_note,omitempty"`
	ForwardedAt           *time.Time `json:"forwarded_at,omitempty"`
	ResolvedAt            *time.Time `json:"resolved_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

type SeverityCountsResponse struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

type SectionIssuesResponse struct {
	Issues []IssueResponse        `json:"issues"`
	Counts SeverityCountsResponse `json:"counts"`
}

type ResolveIssueRequest struct {
	ApplicationId uuid.UUID
	IssueId       uuid.UUID
}

type ForwardIssueRequest struct {
	ApplicationId uuid.UUID
	IssueId       uuid.UUID
	Note          string `json:"note"`
}

type ForwardIssueResponse struct {
	Id uuid.UUID `json:"id"`
}
