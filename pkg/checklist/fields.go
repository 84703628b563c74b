package checklist

import (
	"fmt"
	"time"
)

// FieldKind is the closed set of value shapes a checklist field can take.
// Values are validated per kind before they are persisted as answers or
// manual overrides.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindDate   FieldKind = "date"
	KindChoice FieldKind = "choice"
)

const dateLayout = "2006-01-02"

// EvidenceDef declares a required evidence item on a catalog field.
type EvidenceDef struct {
	Id             string
	Name           string
	Mandatory      bool
	ValidityPeriod string
}

// ExtractionHint binds a field to the document group its value can be
// extracted from. Extraction is simulated: Value is the fixed result the
// extractor yields when the named group is reviewed.
type ExtractionHint struct {
	GroupTitle string
	Value      string
}

// FieldDef is one checklist field as declared by the visa schema catalog.
type FieldDef struct {
	Key        string
	Section    Section
	Label      string
	Required   bool
	Kind       FieldKind
	Options    []string
	QuestionId string
	Extraction *ExtractionHint
	Evidence   []EvidenceDef
}

// ItemId builds the stable checklist item id for a field of a visa type.
func ItemId(visaType, fieldKey string) string {
	return visaType + ":" + fieldKey
}

// Catalog resolves the ordered field definitions of a visa type. Unknown visa
// types return ok=false; callers render an empty checklist instead of failing.
type Catalog interface {
	FieldsFor(visaType string) ([]FieldDef, bool)
}

// ValidateValue checks a raw value against the field's kind. Text accepts
// anything, dates must be ISO (2006-01-02), choices must match an option.
func ValidateValue(def FieldDef, value string) error {
	switch def.Kind {
	case KindDate:
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("field %s: invalid date %q, expected YYYY-MM-DD", def.Key, value)
		}
	case KindChoice:
		for _, opt := range def.Options {
			if opt == value {
				return nil
			}
		}
		return fmt.Errorf("field %s: %q is not a valid option", def.Key, value)
	}
	return nil
}
