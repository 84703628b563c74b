package checklist

import "testing"

func strptr(s string) *string { return &s }

func TestAggregateCounts(t *testing.T) {
	items := []Item{
		{Id: "a", Section: SectionPersonal, Status: ItemStatusComplete, Value: strptr("x")},
		{Id: "b", Section: SectionPersonal, Status: ItemStatusIncomplete},
		{Id: "c", Section: SectionPersonal, Status: ItemStatusIncomplete},
	}

	summaries := Aggregate(items)
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	s := summaries[0]
	if s.TotalCount != 3 || s.CompletedCount != 1 || s.MissingDataCount != 2 {
		t.Errorf("counts = %+v", s)
	}
}

func TestAggregateEvidenceDedupFirstSeen(t *testing.T) {
	// Same evidence id E1 on two items: first occurrence says uploaded,
	// second says not. First-seen flag wins, so E1 is not missing.
	items := []Item{
		{
			Id: "a", Section: SectionFinancial,
			RequiredEvidence: []Evidence{{Id: "E1", IsUploaded: true}},
		},
		{
			Id: "b", Section: SectionFinancial,
			RequiredEvidence: []Evidence{{Id: "E1", IsUploaded: false}, {Id: "E2", IsUploaded: false}},
		},
	}

	summaries := Aggregate(items)
	if len(summaries) != 1 {
		t.Fatalf("summaries = %d, want 1", len(summaries))
	}
	if got := summaries[0].MissingEvidenceCount; got != 1 {
		t.Errorf("MissingEvidenceCount = %d, want 1 (E2 only)", got)
	}
}

func TestAggregateSectionOrderAndOmission(t *testing.T) {
	items := []Item{
		{Id: "t", Section: SectionTravel},
		{Id: "p", Section: SectionPersonal},
		{Id: "f", Section: SectionFinancial},
	}

	summaries := Aggregate(items)
	want := []Section{SectionPersonal, SectionFinancial, SectionTravel}
	if len(summaries) != len(want) {
		t.Fatalf("summaries = %d, want %d", len(summaries), len(want))
	}
	for i, section := range want {
		if summaries[i].Section != section {
			t.Errorf("summaries[%d].Section = %q, want %q", i, summaries[i].Section, section)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", got)
	}
}
