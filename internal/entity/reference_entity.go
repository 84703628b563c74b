package entity

import (
	"time"

	"github.com/google/uuid"

	"visa-casework-be/pkg/checklist"
)

// SectionKeyAssessment is the reference scope of the assessment step, tracked
// alongside the checklist sections.
const SectionKeyAssessment = "assessment"

// IsValidSectionKey accepts any checklist section plus the assessment scope.
func IsValidSectionKey(key string) bool {
	return key == SectionKeyAssessment || checklist.IsValidSection(key)
}

// SectionReference links a document group to a section (or the assessment
// step) as evidence of record. A group may be referenced by any number of
// sections at once; within one section it appears at most once.
type SectionReference struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	SectionKey    string
	GroupId       uuid.UUID
	Position      int
	CreatedAt     time.Time
}

// ReferenceGroupIds extracts the ordered group ids of a section's references.
func ReferenceGroupIds(refs []*SectionReference) []uuid.UUID {
	ids := make([]uuid.UUID, len(refs))
	for i, r := range refs {
		ids[i] = r.GroupId
	}
	return ids
}
