package checklist

import (
	"testing"

	"github.com/google/uuid"
)

func TestIssuesForSection(t *testing.T) {
	sectionItems := []Item{{Id: "visa:a"}, {Id: "visa:b"}}
	issues := []Issue{
		{Id: uuid.New(), LinkedChecklistItemId: "visa:a", Status: IssueStatusOpen},
		{Id: uuid.New(), LinkedChecklistItemId: "visa:z", Status: IssueStatusOpen},
		{Id: uuid.New(), LinkedChecklistItemId: "visa:b", Status: IssueStatusResolved},
	}

	got := IssuesForSection(sectionItems, issues)
	if len(got) != 2 {
		t.Fatalf("matched = %d, want 2", len(got))
	}
	for _, issue := range got {
		if issue.LinkedChecklistItemId != "visa:a" && issue.LinkedChecklistItemId != "visa:b" {
			t.Errorf("unexpected issue for %q", issue.LinkedChecklistItemId)
		}
	}
}

func TestCountBySeverityOpenOnly(t *testing.T) {
	issues := []Issue{
		{Severity: SeverityError, Status: IssueStatusOpen},
		{Severity: SeverityError, Status: IssueStatusResolved},
		{Severity: SeverityWarning, Status: IssueStatusOpen},
		{Severity: SeverityWarning, Status: IssueStatusOpen},
		{Severity: SeverityInfo, Status: IssueStatusOpen},
	}

	counts := CountBySeverity(issues)
	if counts.Errors != 1 || counts.Warnings != 2 || counts.Info != 1 {
		t.Errorf("counts = %+v, want {1 2 1}", counts)
	}
}
