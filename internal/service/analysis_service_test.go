package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/contract"
	"visa-casework-be/internal/repository/memory"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/checklist"
	"visa-casework-be/pkg/visacatalog"

	"github.com/google/uuid"
)

// fakeStore backs the service tests with in-memory state. It acts as its own
// repository factory and unit of work; every test drives one application, so
// the repository fakes serve the store's single data set and honor only the
// specifications the services actually narrow by.
type fakeStore struct {
	mu        sync.Mutex
	app       *entity.Application
	groups    []*entity.DocumentGroup
	answers   []*entity.QuestionnaireAnswer
	overrides []*entity.FieldOverride
	refs      []*entity.SectionReference
	snapshot  *entity.AnalysisSnapshot
	issues    []*entity.QualityIssue

	snapshotErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		app: &entity.Application{
			Id:            uuid.New(),
			ApplicantName: "Amira Haddad",
			VisaType:      "skilled-worker",
			CreatedAt:     time.Now(),
		},
	}
}

func (s *fakeStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return s }

func (s *fakeStore) Begin(ctx context.Context) error { return nil }
func (s *fakeStore) Commit() error                   { return nil }
func (s *fakeStore) Rollback() error                 { return nil }

func (s *fakeStore) ApplicationRepository() contract.ApplicationRepository {
	return &fakeApplicationRepo{s: s}
}
func (s *fakeStore) DocumentGroupRepository() contract.DocumentGroupRepository {
	return &fakeDocumentGroupRepo{s: s}
}
func (s *fakeStore) QuestionnaireAnswerRepository() contract.QuestionnaireAnswerRepository {
	return &fakeQuestionnaireRepo{s: s}
}
func (s *fakeStore) FieldOverrideRepository() contract.FieldOverrideRepository {
	return &fakeOverrideRepo{s: s}
}
func (s *fakeStore) SectionReferenceRepository() contract.SectionReferenceRepository {
	return &fakeReferenceRepo{s: s}
}
func (s *fakeStore) AnalysisSnapshotRepository() contract.AnalysisSnapshotRepository {
	return &fakeSnapshotRepo{s: s}
}
func (s *fakeStore) QualityIssueRepository() contract.QualityIssueRepository {
	return &fakeIssueRepo{s: s}
}

// addReference links a fresh group id to the section under test.
func (s *fakeStore) addReference(sectionKey string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	groupId := uuid.New()
	s.refs = append(s.refs, &entity.SectionReference{
		Id:            uuid.New(),
		ApplicationId: s.app.Id,
		SectionKey:    sectionKey,
		GroupId:       groupId,
		Position:      len(s.refs),
		CreatedAt:     time.Now(),
	})
	return groupId
}

func (s *fakeStore) currentFingerprint() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return checklist.Fingerprint(entity.ReferenceGroupIds(s.refs))
}

func (s *fakeStore) storedSnapshot() *entity.AnalysisSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil
	}
	snap := *s.snapshot
	return &snap
}

type fakeApplicationRepo struct{ s *fakeStore }

func (r *fakeApplicationRepo) Create(ctx context.Context, app *entity.Application) error { return nil }
func (r *fakeApplicationRepo) Update(ctx context.Context, app *entity.Application) error { return nil }
func (r *fakeApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (r *fakeApplicationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.app, nil
}
func (r *fakeApplicationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	return nil, nil
}
func (r *fakeApplicationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeDocumentGroupRepo struct{ s *fakeStore }

func (r *fakeDocumentGroupRepo) Create(ctx context.Context, group *entity.DocumentGroup) error {
	return nil
}
func (r *fakeDocumentGroupRepo) Update(ctx context.Context, group *entity.DocumentGroup) error {
	return nil
}
func (r *fakeDocumentGroupRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentGroup, error) {
	return nil, nil
}
func (r *fakeDocumentGroupRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentGroup, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	groups := make([]*entity.DocumentGroup, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		keep := true
		for _, spec := range specs {
			if byStatus, ok := spec.(specification.ByGroupStatus); ok && string(g.Status) != byStatus.Status {
				keep = false
			}
		}
		if keep {
			groups = append(groups, g)
		}
	}
	return groups, nil
}
func (r *fakeDocumentGroupRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeDocumentGroupRepo) AddFile(ctx context.Context, file *entity.DocumentFile) error {
	return nil
}
func (r *fakeDocumentGroupRepo) MarkFileRemoved(ctx context.Context, groupId, fileId uuid.UUID) error {
	return nil
}

type fakeQuestionnaireRepo struct{ s *fakeStore }

func (r *fakeQuestionnaireRepo) Upsert(ctx context.Context, answer *entity.QuestionnaireAnswer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *answer
	for i, a := range r.s.answers {
		if a.QuestionId == answer.QuestionId {
			r.s.answers[i] = &stored
			return nil
		}
	}
	r.s.answers = append(r.s.answers, &stored)
	return nil
}
func (r *fakeQuestionnaireRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QuestionnaireAnswer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, spec := range specs {
		byQuestion, ok := spec.(specification.ByQuestionID)
		if !ok {
			continue
		}
		for _, a := range r.s.answers {
			if a.QuestionId == byQuestion.QuestionID {
				answer := *a
				return &answer, nil
			}
		}
	}
	return nil, nil
}
func (r *fakeQuestionnaireRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuestionnaireAnswer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.answers, nil
}

type fakeOverrideRepo struct{ s *fakeStore }

func (r *fakeOverrideRepo) Upsert(ctx context.Context, override *entity.FieldOverride) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored := *override
	for i, o := range r.s.overrides {
		if o.FieldId == override.FieldId {
			r.s.overrides[i] = &stored
			return nil
		}
	}
	r.s.overrides = append(r.s.overrides, &stored)
	return nil
}
func (r *fakeOverrideRepo) Delete(ctx context.Context, applicationId uuid.UUID, fieldId string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.overrides[:0]
	for _, o := range r.s.overrides {
		if o.FieldId != fieldId {
			kept = append(kept, o)
		}
	}
	r.s.overrides = kept
	return nil
}
func (r *fakeOverrideRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FieldOverride, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	overrides := make([]*entity.FieldOverride, 0, len(r.s.overrides))
	for _, o := range r.s.overrides {
		keep := true
		for _, spec := range specs {
			if byField, ok := spec.(specification.ByFieldID); ok && o.FieldId != byField.FieldID {
				keep = false
			}
		}
		if keep {
			overrides = append(overrides, o)
		}
	}
	return overrides, nil
}

type fakeReferenceRepo struct{ s *fakeStore }

func (r *fakeReferenceRepo) Create(ctx context.Context, ref *entity.SectionReference) error {
	return nil
}
func (r *fakeReferenceRepo) Delete(ctx context.Context, applicationId uuid.UUID, sectionKey string, groupId uuid.UUID) error {
	return nil
}
func (r *fakeReferenceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SectionReference, error) {
	return nil, nil
}
func (r *fakeReferenceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionReference, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	refs := make([]*entity.SectionReference, len(r.s.refs))
	copy(refs, r.s.refs)
	return refs, nil
}

type fakeSnapshotRepo struct{ s *fakeStore }

func (r *fakeSnapshotRepo) Upsert(ctx context.Context, snapshot *entity.AnalysisSnapshot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.snapshotErr != nil {
		return r.s.snapshotErr
	}
	stored := *snapshot
	r.s.snapshot = &stored
	return nil
}
func (r *fakeSnapshotRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.snapshot == nil {
		return nil, nil
	}
	snap := *r.s.snapshot
	return &snap, nil
}

type fakeIssueRepo struct{ s *fakeStore }

func (r *fakeIssueRepo) Create(ctx context.Context, issue *entity.QualityIssue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.issues = append(r.s.issues, issue)
	return nil
}
func (r *fakeIssueRepo) Update(ctx context.Context, issue *entity.QualityIssue) error { return nil }
func (r *fakeIssueRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.QualityIssue, error) {
	return nil, nil
}
func (r *fakeIssueRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QualityIssue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	issues := make([]*entity.QualityIssue, 0, len(r.s.issues))
	for _, issue := range r.s.issues {
		keep := true
		for _, spec := range specs {
			switch filter := spec.(type) {
			case specification.ByIssueStatus:
				if string(issue.Status) != filter.Status {
					keep = false
				}
			case specification.ByLinkedItemIds:
				matched := false
				for _, id := range filter.ItemIds {
					if issue.LinkedChecklistItemId == id {
						matched = true
					}
				}
				if !matched {
					keep = false
				}
			}
		}
		if keep {
			issues = append(issues, issue)
		}
	}
	return issues, nil
}

// capturingPublisher decodes and records every progress event.
type capturingPublisher struct {
	mu     sync.Mutex
	events []dto.AnalysisProgressEvent
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	var ev dto.AnalysisProgressEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *capturingPublisher) published() []dto.AnalysisProgressEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]dto.AnalysisProgressEvent, len(p.events))
	copy(events, p.events)
	return events
}

type discardLogger struct{}

func (discardLogger) Debug(module, message string, details map[string]interface{}) {}
func (discardLogger) Info(module, message string, details map[string]interface{})  {}
func (discardLogger) Warn(module, message string, details map[string]interface{})  {}
func (discardLogger) Error(module, message string, details map[string]interface{}) {}
func (discardLogger) Sync() error                                                  { return nil }

// gateScheduler holds a run at its first checkpoint until released.
type gateScheduler struct {
	release chan struct{}
}

func (s *gateScheduler) Wait(checkpoint int) {
	if checkpoint == 20 {
		<-s.release
	}
}

// hookScheduler fires a callback before one checkpoint and is immediate
// otherwise.
type hookScheduler struct {
	at   int
	hook func()
}

func (s *hookScheduler) Wait(checkpoint int) {
	if checkpoint == s.at {
		s.hook()
	}
}

func newAnalysisFixture(scheduler Scheduler) (*fakeStore, *capturingPublisher, *memory.AnalysisRunRepository, IAnalysisService) {
	store := newFakeStore()
	publisher := &capturingPublisher{}
	runRepo := memory.NewAnalysisRunRepository()
	svc := NewAnalysisService(store, visacatalog.New(), runRepo, publisher, scheduler, discardLogger{})
	return store, publisher, runRepo, svc
}

func waitForTerminalEvent(t *testing.T, publisher *capturingPublisher) dto.AnalysisProgressEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, ev := range publisher.published() {
			if ev.Progress == 100 {
				return ev
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no terminal progress event before deadline")
	return dto.AnalysisProgressEvent{}
}

func TestGetStatusAdoptsBaselineOnFirstObservation(t *testing.T) {
	store, _, _, svc := newAnalysisFixture(ImmediateScheduler{})
	store.addReference("employment")
	store.addReference("employment")

	status, err := svc.GetStatus(context.Background(), store.app.Id, "employment")
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if status.State != string(entity.AnalysisStateInSync) {
		t.Errorf("first observation state = %q, want in-sync", status.State)
	}

	snap := store.storedSnapshot()
	if snap == nil {
		t.Fatal("first observation did not persist a baseline snapshot")
	}
	if snap.Fingerprint != store.currentFingerprint() {
		t.Errorf("baseline fingerprint = %q, want %q", snap.Fingerprint, store.currentFingerprint())
	}
}

func TestGetStatusReportsStaleAfterReferenceChange(t *testing.T) {
	store, _, _, svc := newAnalysisFixture(ImmediateScheduler{})
	store.addReference("employment")

	if _, err := svc.GetStatus(context.Background(), store.app.Id, "employment"); err != nil {
		t.Fatalf("GetStatus: %v", err)
	}

	store.addReference("employment")

	status, err := svc.GetStatus(context.Background(), store.app.Id, "employment")
	if err != nil {
		t.Fatalf("GetStatus after link: %v", err)
	}
	if status.State != string(entity.AnalysisStateStale) {
		t.Errorf("state after reference change = %q, want stale", status.State)
	}
}

func TestGetStatusRejectsUnknownSection(t *testing.T) {
	store, _, _, svc := newAnalysisFixture(ImmediateScheduler{})

	if _, err := svc.GetStatus(context.Background(), store.app.Id, "paperwork"); err == nil {
		t.Error("unknown section key was accepted")
	}
}

func TestReanalysisBringsStaleSectionBackInSync(t *testing.T) {
	store, publisher, runRepo, svc := newAnalysisFixture(ImmediateScheduler{})
	store.addReference("employment")
	if _, err := svc.GetStatus(context.Background(), store.app.Id, "employment"); err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	store.addReference("employment")

	resp, err := svc.StartReanalysis(context.Background(), &dto.ReanalyzeRequest{
		ApplicationId: store.app.Id,
		SectionKey:    "employment",
	})
	if err != nil {
		t.Fatalf("StartReanalysis: %v", err)
	}
	if resp.State != string(entity.AnalysisStateAnalyzing) {
		t.Errorf("start response state = %q, want analyzing", resp.State)
	}

	terminal := waitForTerminalEvent(t, publisher)
	if terminal.State != string(entity.AnalysisStateInSync) {
		t.Errorf("terminal event state = %q, want in-sync", terminal.State)
	}

	events := publisher.published()
	if len(events) != 4 {
		t.Fatalf("published %d events, want 4", len(events))
	}
	for i, want := range []int{20, 50, 80, 100} {
		if events[i].Progress != want {
			t.Errorf("event %d progress = %d, want %d", i, events[i].Progress, want)
		}
	}

	if _, running := runRepo.Get(store.app.Id, "employment"); running {
		t.Error("run still registered after completion")
	}

	snap := store.storedSnapshot()
	if snap == nil || snap.Fingerprint != store.currentFingerprint() {
		t.Error("completed run did not rewrite the snapshot to the current reference set")
	}

	status, err := svc.GetStatus(context.Background(), store.app.Id, "employment")
	if err != nil {
		t.Fatalf("GetStatus after run: %v", err)
	}
	if status.State != string(entity.AnalysisStateInSync) {
		t.Errorf("state after run = %q, want in-sync", status.State)
	}
}

func TestConcurrentStartObservesActiveRun(t *testing.T) {
	gate := &gateScheduler{release: make(chan struct{})}
	store, publisher, _, svc := newAnalysisFixture(gate)
	store.addReference("employment")

	req := &dto.ReanalyzeRequest{ApplicationId: store.app.Id, SectionKey: "employment"}
	if _, err := svc.StartReanalysis(context.Background(), req); err != nil {
		t.Fatalf("first StartReanalysis: %v", err)
	}

	// The first run is parked at its first checkpoint; a second start must
	// observe it instead of spawning another run.
	second, err := svc.StartReanalysis(context.Background(), req)
	if err != nil {
		t.Fatalf("second StartReanalysis: %v", err)
	}
	if second.State != string(entity.AnalysisStateAnalyzing) {
		t.Errorf("second start state = %q, want analyzing", second.State)
	}

	status, err := svc.GetStatus(context.Background(), store.app.Id, "employment")
	if err != nil {
		t.Fatalf("GetStatus during run: %v", err)
	}
	if status.State != string(entity.AnalysisStateAnalyzing) {
		t.Errorf("status during run = %q, want analyzing", status.State)
	}

	close(gate.release)
	waitForTerminalEvent(t, publisher)

	// Give a hypothetical duplicate run time to emit before counting.
	time.Sleep(50 * time.Millisecond)
	if events := publisher.published(); len(events) != 4 {
		t.Errorf("published %d events, want 4 from a single run", len(events))
	}
}

func TestReferenceChangeMidRunLandsStale(t *testing.T) {
	var store *fakeStore
	scheduler := &hookScheduler{at: 100, hook: func() {
		store.addReference("employment")
	}}
	var publisher *capturingPublisher
	var svc IAnalysisService
	store, publisher, _, svc = newAnalysisFixture(scheduler)
	store.addReference("employment")
	if _, err := svc.GetStatus(context.Background(), store.app.Id, "employment"); err != nil {
		t.Fatalf("GetStatus: %v", err)
	}

	if _, err := svc.StartReanalysis(context.Background(), &dto.ReanalyzeRequest{
		ApplicationId: store.app.Id,
		SectionKey:    "employment",
	}); err != nil {
		t.Fatalf("StartReanalysis: %v", err)
	}

	terminal := waitForTerminalEvent(t, publisher)
	if terminal.State != string(entity.AnalysisStateStale) {
		t.Errorf("terminal event state = %q, want stale after mid-run link", terminal.State)
	}

	// The snapshot holds the key captured at start, so the section stays
	// stale until re-analyzed again.
	status, err := svc.GetStatus(context.Background(), store.app.Id, "employment")
	if err != nil {
		t.Fatalf("GetStatus after run: %v", err)
	}
	if status.State != string(entity.AnalysisStateStale) {
		t.Errorf("state after run = %q, want stale", status.State)
	}
}

func TestFailedCompletionReportsStale(t *testing.T) {
	store, publisher, runRepo, svc := newAnalysisFixture(ImmediateScheduler{})
	store.addReference("employment")
	if _, err := svc.GetStatus(context.Background(), store.app.Id, "employment"); err != nil {
		t.Fatalf("GetStatus: %v", err)
	}

	store.mu.Lock()
	store.snapshotErr = errSnapshotWrite
	store.mu.Unlock()

	if _, err := svc.StartReanalysis(context.Background(), &dto.ReanalyzeRequest{
		ApplicationId: store.app.Id,
		SectionKey:    "employment",
	}); err != nil {
		t.Fatalf("StartReanalysis: %v", err)
	}

	terminal := waitForTerminalEvent(t, publisher)
	if terminal.State != string(entity.AnalysisStateStale) {
		t.Errorf("terminal event state = %q, want stale when the snapshot write fails", terminal.State)
	}
	if _, running := runRepo.Get(store.app.Id, "employment"); running {
		t.Error("run still registered after a failed completion")
	}
}

func TestCompletedRunFilesMissingEvidenceIssues(t *testing.T) {
	store, publisher, _, svc := newAnalysisFixture(ImmediateScheduler{})
	store.addReference("employment")

	if _, err := svc.StartReanalysis(context.Background(), &dto.ReanalyzeRequest{
		ApplicationId: store.app.Id,
		SectionKey:    "employment",
	}); err != nil {
		t.Fatalf("StartReanalysis: %v", err)
	}
	waitForTerminalEvent(t, publisher)

	store.mu.Lock()
	issueCount := len(store.issues)
	store.mu.Unlock()
	if issueCount == 0 {
		t.Fatal("run with no uploaded evidence filed no issues")
	}

	// A second run must not duplicate findings that are still open.
	if _, err := svc.StartReanalysis(context.Background(), &dto.ReanalyzeRequest{
		ApplicationId: store.app.Id,
		SectionKey:    "employment",
	}); err != nil {
		t.Fatalf("second StartReanalysis: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if len(publisher.published()) >= 8 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("second run did not complete before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}

	store.mu.Lock()
	after := len(store.issues)
	store.mu.Unlock()
	if after != issueCount {
		t.Errorf("open findings grew from %d to %d across runs", issueCount, after)
	}
}

var errSnapshotWrite = errors.New("snapshot write failed")
