package checklist

// DiffFields compares a working copy of field values against the synthesized
// baseline and reports which fields actually changed. The same algorithm backs
// the section checklist editor and the assessment answer editor; only the set
// of fields differs.
//
// A working value equal to the baseline's resolved value is not an edit, so
// cancelling and saving an untouched form are both no-ops.
func DiffFields(baseline []Item, working map[string]string) (editedIds []string, hasChanges bool) {
	baselineValues := make(map[string]string, len(baseline))
	for _, item := range baseline {
		v := ""
		if item.Value != nil {
			v = *item.Value
		}
		baselineValues[item.Id] = v
	}

	editedIds = make([]string, 0)
	for _, item := range baseline {
		next, ok := working[item.Id]
		if !ok {
			continue
		}
		if next != baselineValues[item.Id] {
			editedIds = append(editedIds, item.Id)
		}
	}
	return editedIds, len(editedIds) > 0
}
