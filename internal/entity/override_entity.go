package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldOverride is a manually saved checklist value keyed by the stable
// checklist item id. Overrides survive resynthesis because item ids do.
type FieldOverride struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	FieldId       string
	Value         string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// OverridesToMap flattens stored overrides into the map the engine consumes.
func OverridesToMap(overrides []*FieldOverride) map[string]string {
	m := make(map[string]string, len(overrides))
	for _, o := range overrides {
		m[o.FieldId] = o.Value
	}
	return m
}
