package service

import (
	"context"
	"encoding/json"
	"time"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/memory"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/cache"
	"visa-casework-be/pkg/checklist"
	"visa-casework-be/pkg/visacatalog"

	"github.com/google/uuid"
)

type IChecklistService interface {
	GetChecklist(ctx context.Context, applicationId uuid.UUID) (*dto.ShowChecklistResponse, error)
	GetSectionSummaries(ctx context.Context, applicationId uuid.UUID) ([]dto.SectionSummaryResponse, error)
	SaveFieldEdits(ctx context.Context, req *dto.SaveFieldEditsRequest) (*dto.SaveFieldEditsResponse, error)
	ResetFieldEdit(ctx context.Context, applicationId uuid.UUID, sectionKey, itemId string) error
}

type checklistService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalog          *visacatalog.StaticCatalog
	runRepo          *memory.AnalysisRunRepository
	responseCache    *cache.ChecklistCache
	publisherService IPublisherService
}

func NewChecklistService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *visacatalog.StaticCatalog,
	runRepo *memory.AnalysisRunRepository,
	responseCache *cache.ChecklistCache,
	publisherService IPublisherService,
) IChecklistService {
	return &checklistService{
		uowFactory:       uowFactory,
		catalog:          catalog,
		runRepo:          runRepo,
		responseCache:    responseCache,
		publisherService: publisherService,
	}
}

func (s *checklistService) GetChecklist(ctx context.Context, applicationId uuid.UUID) (*dto.ShowChecklistResponse, error) {
	// Cache aside: synthesized checklists are cheap but read constantly while
	// a caseworker has the workspace open.
	if data, ok := s.responseCache.Get(ctx, applicationId.String()); ok {
		var cached dto.ShowChecklistResponse
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, items, err := loadApplicationItems(ctx, uow, s.catalog, applicationId)
	if err != nil {
		return nil, err
	}

	res := buildChecklistResponse(app, items)

	if data, err := json.Marshal(res); err == nil {
		s.responseCache.Set(ctx, applicationId.String(), data)
	}
	return res, nil
}

func (s *checklistService) GetSectionSummaries(ctx context.Context, applicationId uuid.UUID) ([]dto.SectionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	_, items, err := loadApplicationItems(ctx, uow, s.catalog, applicationId)
	if err != nil {
		return nil, err
	}

	summaries := checklist.Aggregate(items)
	res := make([]dto.SectionSummaryResponse, len(summaries))
	for i, summary := range summaries {
		res[i] = toSectionSummaryResponse(summary)
	}
	return res, nil
}

func (s *checklistService) SaveFieldEdits(ctx context.Context, req *dto.SaveFieldEditsRequest) (*dto.SaveFieldEditsResponse, error) {
	if !entity.IsValidSectionKey(req.SectionKey) {
		return nil, serverutils.NewBadRequestError("Unknown section key")
	}

	// A section under re-analysis is locked for edits until the run lands.
	if _, running := s.runRepo.Get(req.ApplicationId, req.SectionKey); running {
		return nil, serverutils.NewLockedError("Section is being re-analyzed; try again when it completes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, items, err := loadApplicationItems(ctx, uow, s.catalog, req.ApplicationId)
	if err != nil {
		return nil, err
	}

	baseline := items
	if req.SectionKey != entity.SectionKeyAssessment {
		baseline = sectionItems(items, req.SectionKey)
	}

	working := make(map[string]string, len(req.Edits))
	for _, edit := range req.Edits {
		working[edit.ItemId] = edit.Value
	}

	// Validate kinds against the catalog before touching anything.
	for _, edit := range req.Edits {
		def, ok := s.catalog.FieldById(app.VisaType, edit.ItemId)
		if !ok {
			return nil, serverutils.NewBadRequestError("Unknown checklist item: " + edit.ItemId)
		}
		if edit.Value == "" {
			continue
		}
		if err := checklist.ValidateValue(def, edit.Value); err != nil {
			return nil, serverutils.NewBadRequestError(err.Error())
		}
	}

	editedIds, hasChanges := checklist.DiffFields(baseline, working)
	if !hasChanges {
		return &dto.SaveFieldEditsResponse{SavedCount: 0}, nil
	}

	for _, itemId := range editedIds {
		override := entity.FieldOverride{
			Id:            uuid.New(),
			ApplicationId: req.ApplicationId,
			FieldId:       itemId,
			Value:         working[itemId],
			CreatedAt:     time.Now(),
		}
		if err := uow.FieldOverrideRepository().Upsert(ctx, &override); err != nil {
			return nil, err
		}
	}

	s.publishInvalidate(ctx, req.ApplicationId)

	return &dto.SaveFieldEditsResponse{SavedCount: len(editedIds)}, nil
}

// ResetFieldEdit removes the manual override so the field reverts to its
// derived value on the next synthesis.
func (s *checklistService) ResetFieldEdit(ctx context.Context, applicationId uuid.UUID, sectionKey, itemId string) error {
	if !entity.IsValidSectionKey(sectionKey) {
		return serverutils.NewBadRequestError("Unknown section key")
	}
	if _, running := s.runRepo.Get(applicationId, sectionKey); running {
		return serverutils.NewLockedError("Section is being re-analyzed; try again when it completes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.FieldOverrideRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.ByFieldID{FieldID: itemId},
	)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return serverutils.NewNotFoundError("No manual edit for this field")
	}

	if err := uow.FieldOverrideRepository().Delete(ctx, applicationId, itemId); err != nil {
		return err
	}

	s.publishInvalidate(ctx, applicationId)
	return nil
}

func (s *checklistService) publishInvalidate(ctx context.Context, applicationId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.ChecklistInvalidateMessage{ApplicationId: applicationId})
	if err != nil {
		return
	}
	_ = s.publisherService.Publish(ctx, payload)
}

func buildChecklistResponse(app *entity.Application, items []checklist.Item) *dto.ShowChecklistResponse {
	summaries := checklist.Aggregate(items)

	sections := make([]dto.ChecklistSectionResponse, 0, len(summaries))
	for _, summary := range summaries {
		secItems := sectionItems(items, string(summary.Section))

		itemResponses := make([]dto.ChecklistItemResponse, len(secItems))
		seenEvidence := make(map[string]bool)
		evidence := make([]dto.EvidenceResponse, 0)
		for i, item := range secItems {
			itemResponses[i] = toChecklistItemResponse(item)
			for _, ev := range item.RequiredEvidence {
				if seenEvidence[ev.Id] {
					continue
				}
				seenEvidence[ev.Id] = true
				evidence = append(evidence, toEvidenceResponse(ev))
			}
		}

		sections = append(sections, dto.ChecklistSectionResponse{
			Summary:  toSectionSummaryResponse(summary),
			Items:    itemResponses,
			Evidence: evidence,
		})
	}

	return &dto.ShowChecklistResponse{
		ApplicationId: app.Id,
		VisaType:      app.VisaType,
		Sections:      sections,
	}
}

func toChecklistItemResponse(item checklist.Item) dto.ChecklistItemResponse {
	linked := make([]dto.LinkedDocumentResponse, len(item.LinkedDocuments))
	for i, ld := range item.LinkedDocuments {
		linked[i] = dto.LinkedDocumentResponse{
			GroupId:    ld.GroupId,
			FileId:     ld.FileId,
			GroupTitle: ld.GroupTitle,
		}
	}
	evidence := make([]dto.EvidenceResponse, len(item.RequiredEvidence))
	for i, ev := range item.RequiredEvidence {
		evidence[i] = toEvidenceResponse(ev)
	}
	return dto.ChecklistItemResponse{
		Id:               item.Id,
		FieldKey:         item.FieldKey,
		Section:          string(item.Section),
		Label:            item.Label,
		IsRequired:       item.IsRequired,
		Value:            item.Value,
		Status:           string(item.Status),
		Source:           string(item.Source),
		LinkedDocuments:  linked,
		RequiredEvidence: evidence,
	}
}

func toEvidenceResponse(ev checklist.Evidence) dto.EvidenceResponse {
	return dto.EvidenceResponse{
		Id:             ev.Id,
		Name:           ev.Name,
		IsMandatory:    ev.IsMandatory,
		IsUploaded:     ev.IsUploaded,
		ValidityPeriod: ev.ValidityPeriod,
	}
}

func toSectionSummaryResponse(s checklist.SectionSummary) dto.SectionSummaryResponse {
	return dto.SectionSummaryResponse{
		Section:              string(s.Section),
		TotalCount:           s.TotalCount,
		CompletedCount:       s.CompletedCount,
		MissingDataCount:     s.MissingDataCount,
		MissingEvidenceCount: s.MissingEvidenceCount,
	}
}
