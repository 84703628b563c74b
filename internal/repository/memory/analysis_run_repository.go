package memory

import (
	"visa-casework-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AnalysisRunRepository tracks in-flight re-analysis runs. Runs live only in
// memory; a restart drops them and the affected sections fall back to stale.
type AnalysisRunRepository struct {
	cache *cache.Cache
}

func NewAnalysisRunRepository() *AnalysisRunRepository {
	// Runs never expire on their own; they are removed when the run
	// completes or is abandoned.
	c := cache.New(cache.NoExpiration, 0)
	return &AnalysisRunRepository{
		cache: c,
	}
}

func runKey(applicationId uuid.UUID, sectionKey string) string {
	return applicationId.String() + ":" + sectionKey
}

// Claim registers a run atomically; it fails when the section already has an
// active run. Concurrent starts race on this single call, never on a separate
// check.
func (r *AnalysisRunRepository) Claim(run *entity.AnalysisRun) bool {
	stored := *run
	err := r.cache.Add(runKey(run.ApplicationId, run.SectionKey), &stored, cache.NoExpiration)
	return err == nil
}

// Save stores a copy, so the goroutine driving the run never shares a struct
// with readers.
func (r *AnalysisRunRepository) Save(run *entity.AnalysisRun) {
	stored := *run
	r.cache.Set(runKey(run.ApplicationId, run.SectionKey), &stored, cache.NoExpiration)
}

func (r *AnalysisRunRepository) Get(applicationId uuid.UUID, sectionKey string) (*entity.AnalysisRun, bool) {
	if x, found := r.cache.Get(runKey(applicationId, sectionKey)); found {
		snapshot := *x.(*entity.AnalysisRun)
		return &snapshot, true
	}
	return nil, false
}

func (r *AnalysisRunRepository) Delete(applicationId uuid.UUID, sectionKey string) {
	r.cache.Delete(runKey(applicationId, sectionKey))
}
