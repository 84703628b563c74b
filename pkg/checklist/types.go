package checklist

import (
	"github.com/google/uuid"
)

// Section groups checklist fields for display and aggregation.
type Section string

const (
	SectionPersonal   Section = "personal"
	SectionEmployment Section = "employment"
	SectionFinancial  Section = "financial"
	SectionTravel     Section = "travel"
	SectionEducation  Section = "education"
	SectionFamily     Section = "family"
	SectionOther      Section = "other"
)

// SectionOrder is the fixed display order. Aggregation emits sections in this
// order and omits sections without items.
var SectionOrder = []Section{
	SectionPersonal,
	SectionEmployment,
	SectionFinancial,
	SectionTravel,
	SectionEducation,
	SectionFamily,
	SectionOther,
}

// IsValidSection reports whether s is one of the known sections.
func IsValidSection(s string) bool {
	for _, sec := range SectionOrder {
		if string(sec) == s {
			return true
		}
	}
	return false
}

// GroupStatus is the review state of an uploaded document group.
type GroupStatus string

const (
	GroupStatusPending  GroupStatus = "pending"
	GroupStatusReviewed GroupStatus = "reviewed"
)

// DocumentFile is a single file inside a document group. Files are never hard
// deleted; Removed excludes them from the group's active set.
type DocumentFile struct {
	Id        uuid.UUID
	Removed   bool
	PageCount int
}

// DocumentGroup is an uploaded category of documents with a review status.
// IsSpecial marks auto-confirmed categories (e.g. system-generated forms).
type DocumentGroup struct {
	Id        uuid.UUID
	Title     string
	Status    GroupStatus
	IsSpecial bool
	Files     []DocumentFile
}

// ActiveFileCount counts files not flagged removed.
func (g DocumentGroup) ActiveFileCount() int {
	n := 0
	for _, f := range g.Files {
		if !f.Removed {
			n++
		}
	}
	return n
}

// Linkable reports whether the group may be linked as a section reference:
// it must be reviewed and still hold at least one active file.
func (g DocumentGroup) Linkable() bool {
	return g.Status == GroupStatusReviewed && g.ActiveFileCount() > 0
}

// ItemStatus is the completion state of a checklist item.
type ItemStatus string

const (
	ItemStatusComplete   ItemStatus = "complete"
	ItemStatusIncomplete ItemStatus = "incomplete"
)

// Source records which tier supplied an item's value.
type Source string

const (
	SourceExtracted     Source = "extracted"
	SourceQuestionnaire Source = "questionnaire"
	SourceManual        Source = "manual"
	SourceNone          Source = ""
)

// LinkedDocument points at the document group (and file) a value was
// extracted from.
type LinkedDocument struct {
	GroupId    uuid.UUID
	FileId     uuid.UUID
	GroupTitle string
}

// Evidence is a required evidence item attached to a checklist field. The same
// evidence id may be referenced by multiple fields in a section; aggregation
// counts it once, keeping the first-seen uploaded flag.
type Evidence struct {
	Id             string
	Name           string
	IsMandatory    bool
	IsUploaded     bool
	ValidityPeriod string
}

// Item is one synthesized checklist entry. Id is deterministic
// (visaType + ":" + field key) so selections, overrides and linked issues
// keyed by id survive resynthesis.
type Item struct {
	Id               string
	FieldKey         string
	Section          Section
	Label            string
	IsRequired       bool
	Value            *string
	Status           ItemStatus
	Source           Source
	LinkedDocuments  []LinkedDocument
	RequiredEvidence []Evidence
}

// IssueSeverity ranks a quality issue.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
	SeverityInfo    IssueSeverity = "info"
)

// IssueStatus is the lifecycle state of a quality issue. Issues are never
// deleted, only resolved.
type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "open"
	IssueStatusResolved IssueStatus = "resolved"
)

// Issue is a quality finding linked to a checklist item by id.
type Issue struct {
	Id                    uuid.UUID
	Severity              IssueSeverity
	Title                 string
	Description           string
	LinkedChecklistItemId string
	Status                IssueStatus
	SuggestedAction       string
}

// SectionSummary carries per-section aggregate counts for the checklist view.
type SectionSummary struct {
	Section              Section
	TotalCount           int
	CompletedCount       int
	MissingDataCount     int
	MissingEvidenceCount int
}

// SeverityCounts partitions open issues by severity.
type SeverityCounts struct {
	Errors   int
	Warnings int
	Info     int
}

// SectionDigest is one section's slice of the outstanding-items digest
// forwarded to a client. Sections with nothing outstanding are excluded.
type SectionDigest struct {
	Section         Section
	MissingFields   []Item
	MissingEvidence []Evidence
	OpenIssues      []Issue
}
