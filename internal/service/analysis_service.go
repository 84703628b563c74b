package service

import (
	"context"
	"encoding/json"
	"time"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/logger"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/memory"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/checklist"
	"visa-casework-be/pkg/visacatalog"

	"github.com/google/uuid"
)

// checkpoints are the fixed progress stops of a re-analysis run.
var checkpoints = []int{20, 50, 80, 100}

type IAnalysisService interface {
	GetStatus(ctx context.Context, applicationId uuid.UUID, sectionKey string) (*dto.SectionStatusResponse, error)
	StartReanalysis(ctx context.Context, req *dto.ReanalyzeRequest) (*dto.ReanalyzeResponse, error)
	GetProgress(ctx context.Context, applicationId uuid.UUID, sectionKey string) (*dto.SectionStatusResponse, error)
}

type analysisService struct {
	uowFactory        unitofwork.RepositoryFactory
	catalog           *visacatalog.StaticCatalog
	runRepo           *memory.AnalysisRunRepository
	progressPublisher IPublisherService
	scheduler         Scheduler
	logger            logger.ILogger
}

func NewAnalysisService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *visacatalog.StaticCatalog,
	runRepo *memory.AnalysisRunRepository,
	progressPublisher IPublisherService,
	scheduler Scheduler,
	log logger.ILogger,
) IAnalysisService {
	return &analysisService{
		uowFactory:        uowFactory,
		catalog:           catalog,
		runRepo:           runRepo,
		progressPublisher: progressPublisher,
		scheduler:         scheduler,
		logger:            log,
	}
}

func (s *analysisService) GetStatus(ctx context.Context, applicationId uuid.UUID, sectionKey string) (*dto.SectionStatusResponse, error) {
	if !entity.IsValidSectionKey(sectionKey) {
		return nil, serverutils.NewBadRequestError("Unknown section key")
	}

	if run, running := s.runRepo.Get(applicationId, sectionKey); running {
		return &dto.SectionStatusResponse{
			SectionKey: sectionKey,
			State:      string(entity.AnalysisStateAnalyzing),
			Progress:   run.Progress,
		}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	currentKey, err := s.currentFingerprint(ctx, uow, applicationId, sectionKey)
	if err != nil {
		return nil, err
	}

	snapshot, err := uow.AnalysisSnapshotRepository().FindOne(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.BySectionKey{SectionKey: sectionKey},
	)
	if err != nil {
		return nil, err
	}

	// First observation adopts the current reference set as the baseline
	// instead of reporting pre-existing links as churn.
	if snapshot == nil {
		snapshot = &entity.AnalysisSnapshot{
			Id:            uuid.New(),
			ApplicationId: applicationId,
			SectionKey:    sectionKey,
			Fingerprint:   currentKey,
			AnalyzedAt:    time.Now(),
		}
		if err := uow.AnalysisSnapshotRepository().Upsert(ctx, snapshot); err != nil {
			return nil, err
		}
	}

	state := entity.AnalysisStateInSync
	if snapshot.Fingerprint != currentKey {
		state = entity.AnalysisStateStale
	}

	analyzedAt := snapshot.AnalyzedAt
	return &dto.SectionStatusResponse{
		SectionKey: sectionKey,
		State:      string(state),
		AnalyzedAt: &analyzedAt,
	}, nil
}

func (s *analysisService) GetProgress(ctx context.Context, applicationId uuid.UUID, sectionKey string) (*dto.SectionStatusResponse, error) {
	return s.GetStatus(ctx, applicationId, sectionKey)
}

func (s *analysisService) StartReanalysis(ctx context.Context, req *dto.ReanalyzeRequest) (*dto.ReanalyzeResponse, error) {
	if !entity.IsValidSectionKey(req.SectionKey) {
		return nil, serverutils.NewBadRequestError("Unknown section key")
	}

	// Concurrent start is a no-op: the caller observes the active run.
	if _, running := s.runRepo.Get(req.ApplicationId, req.SectionKey); running {
		return &dto.ReanalyzeResponse{
			SectionKey: req.SectionKey,
			State:      string(entity.AnalysisStateAnalyzing),
		}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: req.ApplicationId})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Application not found")
	}

	// The run completes against the key captured here, even if references
	// change mid-run: the section may be stale again the moment it lands.
	capturedKey, err := s.currentFingerprint(ctx, uow, req.ApplicationId, req.SectionKey)
	if err != nil {
		return nil, err
	}

	run := &entity.AnalysisRun{
		ApplicationId: req.ApplicationId,
		SectionKey:    req.SectionKey,
		CapturedKey:   capturedKey,
		Progress:      0,
		StartedAt:     time.Now(),
	}
	// Claim is the single atomic gate: if another request won the race between
	// the check above and here, this start degrades to the no-op.
	if !s.runRepo.Claim(run) {
		return &dto.ReanalyzeResponse{
			SectionKey: req.SectionKey,
			State:      string(entity.AnalysisStateAnalyzing),
		}, nil
	}

	go s.runAnalysis(run)

	return &dto.ReanalyzeResponse{
		SectionKey: req.SectionKey,
		State:      string(entity.AnalysisStateAnalyzing),
	}, nil
}

// runAnalysis drives one background run through the fixed checkpoints. It
// detaches from the request context: an accepted run always completes.
func (s *analysisService) runAnalysis(run *entity.AnalysisRun) {
	ctx := context.Background()

	finalState := entity.AnalysisStateInSync
	for _, checkpoint := range checkpoints {
		s.scheduler.Wait(checkpoint)

		run.Progress = checkpoint
		s.runRepo.Save(run)

		if checkpoint == 100 {
			state, err := s.completeRun(ctx, run)
			if err != nil {
				s.logger.Error("AnalysisService", "Failed to complete analysis run", map[string]interface{}{
					"application_id": run.ApplicationId,
					"section_key":    run.SectionKey,
					"error":          err,
				})
				// Snapshot was not rewritten; the section is still stale and
				// the terminal event must say so.
				finalState = entity.AnalysisStateStale
			} else {
				finalState = state
			}
			s.runRepo.Delete(run.ApplicationId, run.SectionKey)
		}

		s.publishProgress(ctx, run, checkpoint, finalState)
	}
}

// completeRun rewrites the snapshot with the key captured at start and reports
// whether the section is already stale again because references moved mid-run.
func (s *analysisService) completeRun(ctx context.Context, run *entity.AnalysisRun) (entity.AnalysisState, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshot := entity.AnalysisSnapshot{
		Id:            uuid.New(),
		ApplicationId: run.ApplicationId,
		SectionKey:    run.SectionKey,
		Fingerprint:   run.CapturedKey,
		AnalyzedAt:    time.Now(),
	}
	if err := uow.AnalysisSnapshotRepository().Upsert(ctx, &snapshot); err != nil {
		return entity.AnalysisStateInSync, err
	}

	if err := s.generateIssues(ctx, uow, run); err != nil {
		return entity.AnalysisStateInSync, err
	}

	currentKey, err := s.currentFingerprint(ctx, uow, run.ApplicationId, run.SectionKey)
	if err != nil {
		return entity.AnalysisStateInSync, err
	}
	if currentKey != run.CapturedKey {
		return entity.AnalysisStateStale, nil
	}
	return entity.AnalysisStateInSync, nil
}

// generateIssues files a warning for every missing mandatory evidence in the
// analyzed section, skipping items that already carry an open finding.
func (s *analysisService) generateIssues(ctx context.Context, uow unitofwork.UnitOfWork, run *entity.AnalysisRun) error {
	_, items, err := loadApplicationItems(ctx, uow, s.catalog, run.ApplicationId)
	if err != nil {
		return err
	}

	secItems := sectionItems(items, run.SectionKey)
	if len(secItems) == 0 {
		return nil
	}

	existing, err := uow.QualityIssueRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: run.ApplicationId},
		specification.ByIssueStatus{Status: string(checklist.IssueStatusOpen)},
	)
	if err != nil {
		return err
	}
	open := make(map[string]bool, len(existing))
	for _, issue := range existing {
		open[issue.LinkedChecklistItemId+"|"+issue.Title] = true
	}

	seen := make(map[string]bool)
	for _, item := range secItems {
		for _, ev := range item.RequiredEvidence {
			if !ev.IsMandatory || ev.IsUploaded || seen[ev.Id] {
				continue
			}
			seen[ev.Id] = true

			title := "Missing mandatory evidence: " + ev.Name
			if open[item.Id+"|"+title] {
				continue
			}

			issue := entity.QualityIssue{
				Id:                    uuid.New(),
				ApplicationId:         run.ApplicationId,
				Severity:              checklist.SeverityWarning,
				Title:                 title,
				Description:           ev.Name + " has not been uploaded for the " + run.SectionKey + " section.",
				LinkedChecklistItemId: item.Id,
				Status:                checklist.IssueStatusOpen,
				SuggestedAction:       "Request " + ev.Name + " from the applicant",
				CreatedAt:             time.Now(),
			}
			if err := uow.QualityIssueRepository().Create(ctx, &issue); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *analysisService) publishProgress(ctx context.Context, run *entity.AnalysisRun, checkpoint int, finalState entity.AnalysisState) {
	if s.progressPublisher == nil {
		return
	}

	state := entity.AnalysisStateAnalyzing
	if checkpoint == 100 {
		state = finalState
	}

	event := dto.AnalysisProgressEvent{
		ApplicationId: run.ApplicationId,
		SectionKey:    run.SectionKey,
		State:         string(state),
		Progress:      checkpoint,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := s.progressPublisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("AnalysisService", "Failed to publish progress event", map[string]interface{}{"error": err})
	}
}

// currentFingerprint keys the section's reference set as it exists right now.
func (s *analysisService) currentFingerprint(ctx context.Context, uow unitofwork.UnitOfWork, applicationId uuid.UUID, sectionKey string) (string, error) {
	refs, err := uow.SectionReferenceRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.BySectionKey{SectionKey: sectionKey},
	)
	if err != nil {
		return "", err
	}
	return checklist.Fingerprint(entity.ReferenceGroupIds(refs)), nil
}
