package checklist

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Fingerprint computes the stable reference key of a set of linked document
// group ids: lexicographic sort joined with commas. Order of linking does not
// matter, duplicates are assumed already removed by the linker. An empty set
// yields the empty string.
func Fingerprint(ids []uuid.UUID) string {
	if len(ids) == 0 {
		return ""
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
