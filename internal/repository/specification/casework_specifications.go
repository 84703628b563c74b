package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByApplicationID scopes a query to one visa application.
type ByApplicationID struct {
	ApplicationID uuid.UUID
}

func (s ByApplicationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("application_id = ?", s.ApplicationID)
}

// ByGroupStatus filters document groups by review status.
type ByGroupStatus struct {
	Status string
}

func (s ByGroupStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// BySectionKey filters reference/snapshot rows by section scope
// (a checklist section name or "assessment").
type BySectionKey struct {
	SectionKey string
}

func (s BySectionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("section_key = ?", s.SectionKey)
}

// ByGroupID filters reference rows by linked document group.
type ByGroupID struct {
	GroupID uuid.UUID
}

func (s ByGroupID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("group_id = ?", s.GroupID)
}

// ByQuestionID filters questionnaire answers by question.
type ByQuestionID struct {
	QuestionID string
}

func (s ByQuestionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question_id = ?", s.QuestionID)
}

// ByFieldID filters overrides by checklist item id.
type ByFieldID struct {
	FieldID string
}

func (s ByFieldID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("field_id = ?", s.FieldID)
}

// ByIssueStatus filters quality issues by lifecycle state.
type ByIssueStatus struct {
	Status string
}

func (s ByIssueStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByLinkedItemIds filters quality issues linked to any of the given
// checklist item ids.
type ByLinkedItemIds struct {
	ItemIds []string
}

func (s ByLinkedItemIds) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("linked_checklist_item_id IN ?", s.ItemIds)
}

// WithFiles preloads a document group's files.
type WithFiles struct{}

func (s WithFiles) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Files")
}
