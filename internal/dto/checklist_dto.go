package dto

import (
	"github.com/google/uuid"
)

type LinkedDocumentResponse struct {
	GroupId    uuid.UUID `json:"group_id"`
	FileId     uuid.UUID `json:"file_id"`
	GroupTitle string    `json:"group_title"`
}

type EvidenceResponse struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	IsMandatory    bool   `json:"is_mandatory"`
	IsUploaded     bool   `json:"is_uploaded"`
	ValidityPeriod string `json:"validity_period,omitempty"`
}

type ChecklistItemResponse struct {
	Id               string                   `json:"id"`
	FieldKey         string                   `json:"field_key"`
	Section          string                   `json:"section"`
	Label            string                   `json:"label"`
	IsRequired       bool                     `json:"is_required"`
	Value            *string                  `json:"value"`
	Status           string                   `json:"status"`
	Source           string                   `json:"source"`
	LinkedDocuments  []LinkedDocumentResponse `json:"linked_documents,omitempty"`
	RequiredEvidence []EvidenceResponse       `json:"required_evidence,omitempty"`
}

type SectionSummaryResponse struct {
	Section              string `json:"section"`
	TotalCount           int    `json:"total_count"`
	CompletedCount       int    `json:"completed_count"`
	MissingDataCount     int    `json:"missing_data_count"`
	MissingEvidenceCount int    `json:"missing_evidence_count"`
}

type ChecklistSectionResponse struct {
	Summary  SectionSummaryResponse  `json:"summary"`
	Items    []ChecklistItemResponse `json:"items"`
	Evidence []EvidenceResponse      `json:"evidence"`
}

type ShowChecklistResponse struct {
	ApplicationId uuid.UUID                  `json:"application_id"`
	VisaType      string                     `json:"visa_type"`
	Sections      []ChecklistSectionResponse `json:"sections"`
}

type FieldEdit struct {
	ItemId string `json:"item_id" validate:"required"`
	Value  string `json:"value"`
}

type SaveFieldEditsRequest struct {
	ApplicationId uuid.UUID
	SectionKey    string
	Edits         []FieldEdit `json:"edits" validate:"required,dive"`
}

type SaveFieldEditsResponse struct {
	SavedCount int `json:"saved_count"`
}
