package visacatalog

import (
	"sort"

	"visa-casework-be/pkg/checklist"
)

// Question is one questionnaire entry for a visa type. Answers are stored
// keyed by Id and consumed by checklist synthesis through the field's
// QuestionId binding.
type Question struct {
	Id      string
	Text    string
	Kind    checklist.FieldKind
	Options []string
}

// Schema is the full static definition of a visa type: its checklist fields
// (with sections, evidence and extraction hints) and its questionnaire.
type Schema struct {
	VisaType  string
	Name      string
	Fields    []checklist.FieldDef
	Questions []Question
}

var schemas = map[string]Schema{
	VisaTypeSkilledWorker: skilledWorkerSchema,
	VisaTypeStudent:       studentSchema,
	VisaTypeFamilyReunion: familyReunionSchema,
}

const (
	VisaTypeSkilledWorker = "skilled-worker"
	VisaTypeStudent       = "student"
	VisaTypeFamilyReunion = "family-reunion"
)

// StaticCatalog serves the built-in visa schemas. It is a versionless lookup
// table; unknown visa types return ok=false and callers render empty state.
type StaticCatalog struct{}

func New() *StaticCatalog {
	return &StaticCatalog{}
}

func (c *StaticCatalog) FieldsFor(visaType string) ([]checklist.FieldDef, bool) {
	schema, ok := schemas[visaType]
	if !ok {
		return nil, false
	}
	return schema.Fields, true
}

func (c *StaticCatalog) QuestionsFor(visaType string) ([]Question, bool) {
	schema, ok := schemas[visaType]
	if !ok {
		return nil, false
	}
	return schema.Questions, true
}

func (c *StaticCatalog) Schema(visaType string) (Schema, bool) {
	schema, ok := schemas[visaType]
	return schema, ok
}

// FieldById resolves a single field definition by checklist item id.
func (c *StaticCatalog) FieldById(visaType, itemId string) (checklist.FieldDef, bool) {
	schema, ok := schemas[visaType]
	if !ok {
		return checklist.FieldDef{}, false
	}
	for _, def := range schema.Fields {
		if checklist.ItemId(visaType, def.Key) == itemId {
			return def, true
		}
	}
	return checklist.FieldDef{}, false
}

// VisaTypes lists the supported visa type ids in stable order.
func VisaTypes() []string {
	types := make([]string, 0, len(schemas))
	for t := range schemas {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
