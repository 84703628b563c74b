package checklist

// IssuesForSection filters issues down to those linked to one of the given
// section's items. The correlator only reads; resolving or forwarding an issue
// is an external mutation on its status.
func IssuesForSection(sectionItems []Item, issues []Issue) []Issue {
	if len(sectionItems) == 0 || len(issues) == 0 {
		return []Issue{}
	}
	itemIds := make(map[string]struct{}, len(sectionItems))
	for _, item := range sectionItems {
		itemIds[item.Id] = struct{}{}
	}

	matched := make([]Issue, 0)
	for _, issue := range issues {
		if _, ok := itemIds[issue.LinkedChecklistItemId]; ok {
			matched = append(matched, issue)
		}
	}
	return matched
}

// CountBySeverity partitions issues by severity, counting open issues only.
func CountBySeverity(issues []Issue) SeverityCounts {
	var counts SeverityCounts
	for _, issue := range issues {
		if issue.Status != IssueStatusOpen {
			continue
		}
		switch issue.Severity {
		case SeverityError:
			counts.Errors++
		case SeverityWarning:
			counts.Warnings++
		case SeverityInfo:
			counts.Info++
		}
	}
	return counts
}
