package checklist

// SummaryForSend builds the outstanding-items digest forwarded to a client:
// per section the incomplete fields, the deduplicated missing mandatory
// evidence, and the open issues. Sections with none of the three are excluded
// from the digest entirely.
func SummaryForSend(items []Item, issues []Issue) []SectionDigest {
	bySection := make(map[Section][]Item, len(SectionOrder))
	for _, item := range items {
		bySection[item.Section] = append(bySection[item.Section], item)
	}

	digests := make([]SectionDigest, 0)
	for _, section := range SectionOrder {
		sectionItems := bySection[section]
		if len(sectionItems) == 0 {
			continue
		}

		d := SectionDigest{
			Section:         section,
			MissingFields:   make([]Item, 0),
			MissingEvidence: make([]Evidence, 0),
			OpenIssues:      make([]Issue, 0),
		}

		seen := make(map[string]bool)
		for _, item := range sectionItems {
			if item.Status != ItemStatusComplete {
				d.MissingFields = append(d.MissingFields, item)
			}
			for _, ev := range item.RequiredEvidence {
				if !ev.IsMandatory || seen[ev.Id] {
					continue
				}
				seen[ev.Id] = true
				if !ev.IsUploaded {
					d.MissingEvidence = append(d.MissingEvidence, ev)
				}
			}
		}

		for _, issue := range IssuesForSection(sectionItems, issues) {
			if issue.Status == IssueStatusOpen {
				d.OpenIssues = append(d.OpenIssues, issue)
			}
		}

		if len(d.MissingFields) == 0 && len(d.MissingEvidence) == 0 && len(d.OpenIssues) == 0 {
			continue
		}
		digests = append(digests, d)
	}
	return digests
}
