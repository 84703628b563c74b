package dto

import (
	"github.com/google/uuid"
)

type SendDigestRequest struct {
	ApplicationId uuid.UUID
}

type DigestSectionResponse struct {
	Section         string                  `json:"section"`
	MissingFields   []ChecklistItemResponse `json:"missing_fields"`
	MissingEvidence []EvidenceResponse      `json:"missing_evidence"`
	OpenIssues      []IssueSummaryResponse  `json:"open_issues"`
}

type IssueSummaryResponse struct {
	Id       uuid.UUID `json:"id"`
	Severity string    `json:"severity"`
	Title    string    `json:"title"`
}

type SendDigestResponse struct {
	SentTo   string                  `json:"sent_to"`
	Sections []DigestSectionResponse `json:"sections"`
}
