package visacatalog

import (
	"testing"

	"visa-casework-be/pkg/checklist"
)

func TestFieldsForKnownTypes(t *testing.T) {
	cat := New()
	for _, visaType := range VisaTypes() {
		fields, ok := cat.FieldsFor(visaType)
		if !ok || len(fields) == 0 {
			t.Errorf("expected fields for %q", visaType)
		}
	}
}

func TestFieldsForUnknownType(t *testing.T) {
	if _, ok := New().FieldsFor("diplomatic"); ok {
		t.Error("unknown visa type must return ok=false")
	}
}

func TestSchemaConsistency(t *testing.T) {
	cat := New()
	for _, visaType := range VisaTypes() {
		schema, _ := cat.Schema(visaType)

		questions := make(map[string]Question, len(schema.Questions))
		for _, q := range schema.Questions {
			if _, dup := questions[q.Id]; dup {
				t.Errorf("%s: duplicate question id %q", visaType, q.Id)
			}
			questions[q.Id] = q
		}

		seenKeys := make(map[string]bool, len(schema.Fields))
		for _, def := range schema.Fields {
			if seenKeys[def.Key] {
				t.Errorf("%s: duplicate field key %q", visaType, def.Key)
			}
			seenKeys[def.Key] = true

			if !checklist.IsValidSection(string(def.Section)) {
				t.Errorf("%s/%s: invalid section %q", visaType, def.Key, def.Section)
			}
			if def.Kind == checklist.KindChoice && len(def.Options) == 0 {
				t.Errorf("%s/%s: choice field without options", visaType, def.Key)
			}

			// Every question binding must resolve, with a matching kind.
			if def.QuestionId != "" {
				q, ok := questions[def.QuestionId]
				if !ok {
					t.Errorf("%s/%s: unknown question %q", visaType, def.Key, def.QuestionId)
					continue
				}
				if q.Kind != def.Kind {
					t.Errorf("%s/%s: question kind %q != field kind %q", visaType, def.Key, q.Kind, def.Kind)
				}
			}
		}
	}
}

func TestFieldById(t *testing.T) {
	cat := New()
	def, ok := cat.FieldById(VisaTypeSkilledWorker, "skilled-worker:employer_name")
	if !ok || def.Key != "employer_name" {
		t.Errorf("FieldById = (%+v, %v)", def, ok)
	}
	if _, ok := cat.FieldById(VisaTypeSkilledWorker, "skilled-worker:nope"); ok {
		t.Error("unknown field id must return ok=false")
	}
}
