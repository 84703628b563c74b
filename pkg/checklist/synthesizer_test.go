package checklist

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

type stubCatalog map[string][]FieldDef

func (c stubCatalog) FieldsFor(visaType string) ([]FieldDef, bool) {
	defs, ok := c[visaType]
	return defs, ok
}

func reviewedGroup(title string) DocumentGroup {
	return DocumentGroup{
		Id:     uuid.New(),
		Title:  title,
		Status: GroupStatusReviewed,
		Files:  []DocumentFile{{Id: uuid.New(), PageCount: 3}},
	}
}

var testCatalog = stubCatalog{
	"skilled-worker": {
		{
			Key:        "employer_name",
			Section:    SectionEmployment,
			Label:      "Employer name",
			Required:   true,
			Kind:       KindText,
			Extraction: &ExtractionHint{GroupTitle: "Payslips", Value: "Meridian Logistics Ltd"},
			Evidence: []EvidenceDef{
				{Id: "ev-payslips", Name: "Payslips", Mandatory: true},
			},
		},
		{
			Key:        "job_title",
			Section:    SectionEmployment,
			Label:      "Job title",
			Required:   true,
			Kind:       KindText,
			QuestionId: "q_job_title",
		},
		{
			Key:      "bank_balance",
			Section:  SectionFinancial,
			Label:    "Bank balance",
			Required: true,
			Kind:     KindText,
			Evidence: []EvidenceDef{
				{Id: "ev-bank", Name: "Bank Statements", Mandatory: true},
			},
		},
	},
}

func TestSynthesizeUnknownVisaType(t *testing.T) {
	items := Synthesize("diplomatic", nil, nil, nil, testCatalog)
	if len(items) != 0 {
		t.Fatalf("expected empty checklist for unknown visa type, got %d items", len(items))
	}
}

func TestSynthesizeSourcePrecedence(t *testing.T) {
	payslips := reviewedGroup("Payslips")

	tests := []struct {
		name       string
		groups     []DocumentGroup
		answers    map[string]string
		overrides  map[string]string
		fieldId    string
		wantValue  string
		wantSource Source
	}{
		{
			name:       "extracted from reviewed group",
			groups:     []DocumentGroup{payslips},
			fieldId:    "skilled-worker:employer_name",
			wantValue:  "Meridian Logistics Ltd",
			wantSource: SourceExtracted,
		},
		{
			name:       "questionnaire answer",
			answers:    map[string]string{"q_job_title": "Operations Manager"},
			fieldId:    "skilled-worker:job_title",
			wantValue:  "Operations Manager",
			wantSource: SourceQuestionnaire,
		},
		{
			name:       "manual override beats extraction",
			groups:     []DocumentGroup{payslips},
			overrides:  map[string]string{"skilled-worker:employer_name": "Meridian Logistics (UK) Ltd"},
			fieldId:    "skilled-worker:employer_name",
			wantValue:  "Meridian Logistics (UK) Ltd",
			wantSource: SourceManual,
		},
		{
			name:       "override equal to derived value keeps extracted source",
			groups:     []DocumentGroup{payslips},
			overrides:  map[string]string{"skilled-worker:employer_name": "Meridian Logistics Ltd"},
			fieldId:    "skilled-worker:employer_name",
			wantValue:  "Meridian Logistics Ltd",
			wantSource: SourceExtracted,
		},
		{
			name:       "override without derived value is manual",
			overrides:  map[string]string{"skilled-worker:job_title": "Forklift Driver"},
			fieldId:    "skilled-worker:job_title",
			wantValue:  "Forklift Driver",
			wantSource: SourceManual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Synthesize("skilled-worker", tt.groups, tt.answers, tt.overrides, testCatalog)
			item := findItem(t, items, tt.fieldId)

			if item.Value == nil || *item.Value != tt.wantValue {
				t.Errorf("Value = %v, want %q", item.Value, tt.wantValue)
			}
			if item.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", item.Source, tt.wantSource)
			}
			if item.Status != ItemStatusComplete {
				t.Errorf("Status = %q, want complete", item.Status)
			}
		})
	}
}

func TestSynthesizeEmptyOverrideClearsField(t *testing.T) {
	payslips := reviewedGroup("Payslips")
	overrides := map[string]string{"skilled-worker:employer_name": ""}

	items := Synthesize("skilled-worker", []DocumentGroup{payslips}, nil, overrides, testCatalog)
	item := findItem(t, items, "skilled-worker:employer_name")

	if item.Value != nil {
		t.Errorf("Value = %q, want nil: cleared field must not resurface the extracted value", *item.Value)
	}
	if item.Status != ItemStatusIncomplete {
		t.Errorf("Status = %q, want incomplete", item.Status)
	}
	if len(item.LinkedDocuments) != 0 {
		t.Errorf("LinkedDocuments = %d, want none for a cleared field", len(item.LinkedDocuments))
	}
}

func TestSynthesizeUnresolvedField(t *testing.T) {
	items := Synthesize("skilled-worker", nil, nil, nil, testCatalog)
	item := findItem(t, items, "skilled-worker:employer_name")

	if item.Value != nil {
		t.Errorf("Value = %q, want nil", *item.Value)
	}
	if item.Status != ItemStatusIncomplete {
		t.Errorf("Status = %q, want incomplete", item.Status)
	}
	if item.Source != SourceNone {
		t.Errorf("Source = %q, want empty", item.Source)
	}
}

func TestSynthesizeExtractionRequiresReviewedGroupWithActiveFile(t *testing.T) {
	pending := reviewedGroup("Payslips")
	pending.Status = GroupStatusPending

	emptied := reviewedGroup("Payslips")
	emptied.Files[0].Removed = true

	for _, tt := range []struct {
		name  string
		group DocumentGroup
	}{
		{"pending group", pending},
		{"all files removed", emptied},
	} {
		t.Run(tt.name, func(t *testing.T) {
			items := Synthesize("skilled-worker", []DocumentGroup{tt.group}, nil, nil, testCatalog)
			item := findItem(t, items, "skilled-worker:employer_name")
			if item.Value != nil {
				t.Errorf("expected no extraction, got value %q", *item.Value)
			}
		})
	}
}

func TestSynthesizeLinkedDocuments(t *testing.T) {
	payslips := reviewedGroup("Payslips")
	items := Synthesize("skilled-worker", []DocumentGroup{payslips}, nil, nil, testCatalog)
	item := findItem(t, items, "skilled-worker:employer_name")

	if len(item.LinkedDocuments) != 1 {
		t.Fatalf("LinkedDocuments = %d, want 1", len(item.LinkedDocuments))
	}
	if item.LinkedDocuments[0].GroupId != payslips.Id {
		t.Errorf("linked group = %s, want %s", item.LinkedDocuments[0].GroupId, payslips.Id)
	}
	if item.LinkedDocuments[0].FileId != payslips.Files[0].Id {
		t.Errorf("linked file = %s, want %s", item.LinkedDocuments[0].FileId, payslips.Files[0].Id)
	}
}

func TestSynthesizeEvidenceAgainstGlobalDocumentSet(t *testing.T) {
	bank := reviewedGroup("Bank Statements")
	items := Synthesize("skilled-worker", []DocumentGroup{bank}, nil, nil, testCatalog)

	balance := findItem(t, items, "skilled-worker:bank_balance")
	if len(balance.RequiredEvidence) != 1 || !balance.RequiredEvidence[0].IsUploaded {
		t.Errorf("expected bank statements evidence uploaded, got %+v", balance.RequiredEvidence)
	}

	// Dangling evidence: nothing named "Payslips" exists, so not uploaded.
	employer := findItem(t, items, "skilled-worker:employer_name")
	if len(employer.RequiredEvidence) != 1 || employer.RequiredEvidence[0].IsUploaded {
		t.Errorf("expected payslips evidence not uploaded, got %+v", employer.RequiredEvidence)
	}
}

func TestSynthesizeDeterminismAndIdStability(t *testing.T) {
	payslips := reviewedGroup("Payslips")
	answers := map[string]string{"q_job_title": "Operations Manager"}

	first := Synthesize("skilled-worker", []DocumentGroup{payslips}, answers, nil, testCatalog)
	second := Synthesize("skilled-worker", []DocumentGroup{payslips}, answers, nil, testCatalog)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical output")
	}

	// Changing only the document set must not disturb unrelated item ids.
	withoutDocs := Synthesize("skilled-worker", nil, answers, nil, testCatalog)
	for i := range first {
		if first[i].Id != withoutDocs[i].Id {
			t.Errorf("item id changed with document set: %q vs %q", first[i].Id, withoutDocs[i].Id)
		}
	}
}

func findItem(t *testing.T, items []Item, id string) Item {
	t.Helper()
	for _, item := range items {
		if item.Id == id {
			return item
		}
	}
	t.Fatalf("item %q not found", id)
	return Item{}
}
