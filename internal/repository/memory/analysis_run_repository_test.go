package memory

import (
	"sync"
	"testing"
	"time"

	"visa-casework-be/internal/entity"

	"github.com/google/uuid"
)

func newRun(applicationId uuid.UUID, sectionKey string) *entity.AnalysisRun {
	return &entity.AnalysisRun{
		ApplicationId: applicationId,
		SectionKey:    sectionKey,
		CapturedKey:   "key",
		StartedAt:     time.Now(),
	}
}

func TestClaimAdmitsExactlyOneOfConcurrentStarts(t *testing.T) {
	repo := NewAnalysisRunRepository()
	applicationId := uuid.New()

	const starters = 8
	var wg sync.WaitGroup
	wins := make(chan bool, starters)
	for i := 0; i < starters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- repo.Claim(newRun(applicationId, "employment"))
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for claimed := range wins {
		if claimed {
			won++
		}
	}
	if won != 1 {
		t.Errorf("%d starters claimed the run, want exactly 1", won)
	}
}

func TestClaimIsFreeAgainAfterDelete(t *testing.T) {
	repo := NewAnalysisRunRepository()
	applicationId := uuid.New()

	if !repo.Claim(newRun(applicationId, "employment")) {
		t.Fatal("first claim failed on an empty repository")
	}
	if repo.Claim(newRun(applicationId, "employment")) {
		t.Error("second claim succeeded while the run was active")
	}
	if !repo.Claim(newRun(applicationId, "financial")) {
		t.Error("claim for a different section was blocked")
	}

	repo.Delete(applicationId, "employment")
	if !repo.Claim(newRun(applicationId, "employment")) {
		t.Error("claim failed after the previous run was deleted")
	}
}

func TestSaveAndGetDoNotShareState(t *testing.T) {
	repo := NewAnalysisRunRepository()
	run := newRun(uuid.New(), "employment")
	if !repo.Claim(run) {
		t.Fatal("claim failed")
	}

	// The driving goroutine keeps mutating its own struct; stored state must
	// only move on Save.
	run.Progress = 50
	got, ok := repo.Get(run.ApplicationId, run.SectionKey)
	if !ok {
		t.Fatal("run not found after claim")
	}
	if got.Progress != 0 {
		t.Errorf("stored progress = %d before Save, want 0", got.Progress)
	}

	repo.Save(run)
	got, _ = repo.Get(run.ApplicationId, run.SectionKey)
	if got.Progress != 50 {
		t.Errorf("stored progress = %d after Save, want 50", got.Progress)
	}

	// Readers get their own copy too.
	got.Progress = 99
	again, _ := repo.Get(run.ApplicationId, run.SectionKey)
	if again.Progress != 50 {
		t.Errorf("reader mutation leaked into the store: progress = %d", again.Progress)
	}
}
