package checklist

import (
	"reflect"
	"testing"
)

func TestDiffFields(t *testing.T) {
	baseline := []Item{
		{Id: "v:a", Value: strptr("one")},
		{Id: "v:b", Value: strptr("two")},
		{Id: "v:c"}, // unresolved
	}

	tests := []struct {
		name        string
		working     map[string]string
		wantEdited  []string
		wantChanges bool
	}{
		{
			name:        "no working values",
			working:     map[string]string{},
			wantEdited:  []string{},
			wantChanges: false,
		},
		{
			name:        "identical values are not edits",
			working:     map[string]string{"v:a": "one", "v:b": "two"},
			wantEdited:  []string{},
			wantChanges: false,
		},
		{
			name:        "changed value",
			working:     map[string]string{"v:a": "uno"},
			wantEdited:  []string{"v:a"},
			wantChanges: true,
		},
		{
			name:        "filling an empty field",
			working:     map[string]string{"v:c": "three"},
			wantEdited:  []string{"v:c"},
			wantChanges: true,
		},
		{
			name:        "clearing a field",
			working:     map[string]string{"v:b": ""},
			wantEdited:  []string{"v:b"},
			wantChanges: true,
		},
		{
			name:        "unknown ids are ignored",
			working:     map[string]string{"v:zz": "noise"},
			wantEdited:  []string{},
			wantChanges: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edited, hasChanges := DiffFields(baseline, tt.working)
			if !reflect.DeepEqual(edited, tt.wantEdited) {
				t.Errorf("editedIds = %v, want %v", edited, tt.wantEdited)
			}
			if hasChanges != tt.wantChanges {
				t.Errorf("hasChanges = %v, want %v", hasChanges, tt.wantChanges)
			}
		})
	}
}
