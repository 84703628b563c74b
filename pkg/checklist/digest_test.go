package checklist

import (
	"testing"

	"github.com/google/uuid"
)

func TestSummaryForSendExcludesCleanSections(t *testing.T) {
	items := []Item{
		// Personal: complete, mandatory evidence uploaded, no issues -> excluded.
		{
			Id: "v:name", Section: SectionPersonal, Status: ItemStatusComplete, Value: strptr("x"),
			RequiredEvidence: []Evidence{{Id: "E1", IsMandatory: true, IsUploaded: true}},
		},
		// Employment: one missing field -> included.
		{Id: "v:employer", Section: SectionEmployment, Status: ItemStatusIncomplete},
	}

	digests := SummaryForSend(items, nil)
	if len(digests) != 1 {
		t.Fatalf("digests = %d, want 1", len(digests))
	}
	if digests[0].Section != SectionEmployment {
		t.Errorf("Section = %q, want employment", digests[0].Section)
	}
	if len(digests[0].MissingFields) != 1 {
		t.Errorf("MissingFields = %d, want 1", len(digests[0].MissingFields))
	}
}

func TestSummaryForSendMandatoryEvidenceOnly(t *testing.T) {
	items := []Item{
		{
			Id: "v:balance", Section: SectionFinancial, Status: ItemStatusComplete, Value: strptr("x"),
			RequiredEvidence: []Evidence{
				{Id: "E1", Name: "Bank Statements", IsMandatory: true, IsUploaded: false},
				{Id: "E2", Name: "Tax Returns", IsMandatory: false, IsUploaded: false},
			},
		},
		{
			Id: "v:funds", Section: SectionFinancial, Status: ItemStatusComplete, Value: strptr("y"),
			RequiredEvidence: []Evidence{
				{Id: "E1", Name: "Bank Statements", IsMandatory: true, IsUploaded: false},
			},
		},
	}

	digests := SummaryForSend(items, nil)
	if len(digests) != 1 {
		t.Fatalf("digests = %d, want 1", len(digests))
	}
	// E1 counted once despite two references, E2 skipped as optional.
	if len(digests[0].MissingEvidence) != 1 || digests[0].MissingEvidence[0].Id != "E1" {
		t.Errorf("MissingEvidence = %+v, want [E1]", digests[0].MissingEvidence)
	}
}

func TestSummaryForSendOpenIssuesIncludeSection(t *testing.T) {
	items := []Item{
		{Id: "v:arrival", Section: SectionTravel, Status: ItemStatusComplete, Value: strptr("2026-09-01")},
	}
	issues := []Issue{
		{Id: uuid.New(), LinkedChecklistItemId: "v:arrival", Status: IssueStatusOpen, Severity: SeverityWarning},
		{Id: uuid.New(), LinkedChecklistItemId: "v:arrival", Status: IssueStatusResolved, Severity: SeverityError},
	}

	digests := SummaryForSend(items, issues)
	if len(digests) != 1 {
		t.Fatalf("digests = %d, want 1 (open issue keeps section in digest)", len(digests))
	}
	if len(digests[0].OpenIssues) != 1 {
		t.Errorf("OpenIssues = %d, want 1", len(digests[0].OpenIssues))
	}
}
