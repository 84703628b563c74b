package checklist

import "strings"

// Synthesize derives the enhanced checklist for a visa type from the current
// document groups, questionnaire answers and saved manual overrides.
//
// Value precedence per field: a manual override that differs from the
// system-derived value, then a value extracted from a reviewed document group,
// then a raw questionnaire answer. An override equal to the derived value does
// not flip the source to manual; an empty override clears the field, leaving
// it incomplete instead of resurfacing the derived value.
//
// The output is deterministic: items follow catalog field order and ids are
// stable across recomputation, so overrides and linked issues keyed by item id
// survive. An unknown visa type yields an empty checklist.
func Synthesize(
	visaType string,
	groups []DocumentGroup,
	answers map[string]string,
	overrides map[string]string,
	cat Catalog,
) []Item {
	defs, ok := cat.FieldsFor(visaType)
	if !ok {
		return []Item{}
	}

	items := make([]Item, 0, len(defs))
	for _, def := range defs {
		items = append(items, synthesizeField(visaType, def, groups, answers, overrides))
	}
	return items
}

func synthesizeField(
	visaType string,
	def FieldDef,
	groups []DocumentGroup,
	answers map[string]string,
	overrides map[string]string,
) Item {
	item := Item{
		Id:         ItemId(visaType, def.Key),
		FieldKey:   def.Key,
		Section:    def.Section,
		Label:      def.Label,
		IsRequired: def.Required,
		Status:     ItemStatusIncomplete,
		Source:     SourceNone,
	}

	// System-derived tiers: extraction first, questionnaire second.
	derived := ""
	derivedSource := SourceNone
	var linked []LinkedDocument

	if def.Extraction != nil {
		if group, file, found := findExtractionSource(groups, def.Extraction.GroupTitle); found {
			derived = def.Extraction.Value
			derivedSource = SourceExtracted
			linked = []LinkedDocument{{
				GroupId:    group.Id,
				FileId:     file.Id,
				GroupTitle: group.Title,
			}}
		}
	}
	if derivedSource == SourceNone && def.QuestionId != "" {
		if answer, ok := answers[def.QuestionId]; ok && answer != "" {
			derived = answer
			derivedSource = SourceQuestionnaire
		}
	}

	value := derived
	source := derivedSource
	if override, ok := overrides[item.Id]; ok && override != derived {
		// An empty override is a deliberate clear: the derived value must not
		// resurface under it.
		value = override
		source = SourceManual
		linked = nil
	}

	if value != "" {
		v := value
		item.Value = &v
		item.Status = ItemStatusComplete
		item.Source = source
		item.LinkedDocuments = linked
	}

	item.RequiredEvidence = resolveEvidence(def.Evidence, groups)
	return item
}

// findExtractionSource locates the reviewed group the extractor attributes a
// value to, together with its first active file. Pending groups and groups
// whose files were all removed cannot back an extraction.
func findExtractionSource(groups []DocumentGroup, title string) (DocumentGroup, DocumentFile, bool) {
	for _, g := range groups {
		if !strings.EqualFold(g.Title, title) || g.Status != GroupStatusReviewed {
			continue
		}
		for _, f := range g.Files {
			if !f.Removed {
				return g, f, true
			}
		}
	}
	return DocumentGroup{}, DocumentFile{}, false
}

// resolveEvidence evaluates the field's evidence requirements against the
// global document set. Evidence with no matching group is simply not uploaded.
func resolveEvidence(defs []EvidenceDef, groups []DocumentGroup) []Evidence {
	if len(defs) == 0 {
		return nil
	}
	out := make([]Evidence, 0, len(defs))
	for _, def := range defs {
		out = append(out, Evidence{
			Id:             def.Id,
			Name:           def.Name,
			IsMandatory:    def.Mandatory,
			IsUploaded:     evidenceUploaded(groups, def.Name),
			ValidityPeriod: def.ValidityPeriod,
		})
	}
	return out
}

func evidenceUploaded(groups []DocumentGroup, name string) bool {
	for _, g := range groups {
		if strings.EqualFold(g.Title, name) && g.ActiveFileCount() > 0 {
			return true
		}
	}
	return false
}
