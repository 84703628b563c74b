package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisSnapshot is the reference fingerprint captured when a section's
// analysis last completed. Immutable between runs; rewritten only on
// successful completion.
type AnalysisSnapshot struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	SectionKey    string
	Fingerprint   string
	AnalyzedAt    time.Time
}

// AnalysisState is the staleness state machine position of a section.
type AnalysisState string

const (
	AnalysisStateInSync    AnalysisState = "in-sync"
	AnalysisStateStale     AnalysisState = "stale"
	AnalysisStateAnalyzing AnalysisState = "analyzing"
)

// AnalysisRun is an in-flight re-analysis for one section. At most one run
// per (application, section) is active; the run always completes against the
// key captured at start.
type AnalysisRun struct {
	ApplicationId uuid.UUID
	SectionKey    string
	CapturedKey   string
	Progress      int
	StartedAt     time.Time
}
