package checklist

// Aggregate groups checklist items by section and computes completion and
// missing-data counts. Sections follow the fixed display order; sections with
// no items are omitted.
//
// MissingEvidenceCount deduplicates by evidence id: the same evidence document
// may satisfy several fields, so only the first-seen uploaded flag per id is
// considered.
func Aggregate(items []Item) []SectionSummary {
	bySection := make(map[Section][]Item, len(SectionOrder))
	for _, item := range items {
		bySection[item.Section] = append(bySection[item.Section], item)
	}

	summaries := make([]SectionSummary, 0, len(bySection))
	for _, section := range SectionOrder {
		sectionItems := bySection[section]
		if len(sectionItems) == 0 {
			continue
		}
		summaries = append(summaries, summarize(section, sectionItems))
	}
	return summaries
}

func summarize(section Section, items []Item) SectionSummary {
	s := SectionSummary{Section: section, TotalCount: len(items)}

	evidenceUploaded := make(map[string]bool)
	var evidenceOrder []string

	for _, item := range items {
		if item.Status == ItemStatusComplete {
			s.CompletedCount++
		}
		if item.Value == nil {
			s.MissingDataCount++
		}
		for _, ev := range item.RequiredEvidence {
			if _, seen := evidenceUploaded[ev.Id]; !seen {
				evidenceUploaded[ev.Id] = ev.IsUploaded
				evidenceOrder = append(evidenceOrder, ev.Id)
			}
		}
	}

	for _, id := range evidenceOrder {
		if !evidenceUploaded[id] {
			s.MissingEvidenceCount++
		}
	}
	return s
}
