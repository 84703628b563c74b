package service

import (
	"context"
	"time"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/checklist"
	"visa-casework-be/pkg/visacatalog"

	"github.com/google/uuid"
)

type IIssueService interface {
	GetForSection(ctx context.Context, applicationId uuid.UUID, section string) (*dto.SectionIssuesResponse, error)
	Resolve(ctx context.Context, req *dto.ResolveIssueRequest) error
	Forward(ctx context.Context, req *dto.ForwardIssueRequest) (*dto.ForwardIssueResponse, error)
}

type issueService struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    *visacatalog.StaticCatalog
}

func NewIssueService(uowFactory unitofwork.RepositoryFactory, catalog *visacatalog.StaticCatalog) IIssueService {
	return &issueService{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

func (s *issueService) GetForSection(ctx context.Context, applicationId uuid.UUID, section string) (*dto.SectionIssuesResponse, error) {
	if !checklist.IsValidSection(section) {
		return nil, serverutils.NewBadRequestError("Unknown section")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	_, items, err := loadApplicationItems(ctx, uow, s.catalog, applicationId)
	if err != nil {
		return nil, err
	}

	secItems := sectionItems(items, section)
	if len(secItems) == 0 {
		return &dto.SectionIssuesResponse{Issues: []dto.IssueResponse{}}, nil
	}

	itemIds := make([]string, len(secItems))
	for i, item := range secItems {
		itemIds[i] = item.Id
	}

	// Only issues linked to this section's items; the store narrows instead of
	// filtering the whole application in memory.
	stored, err := uow.QualityIssueRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.ByLinkedItemIds{ItemIds: itemIds},
	)
	if err != nil {
		return nil, err
	}

	matched := checklist.IssuesForSection(secItems, entity.IssuesToEngine(stored))
	counts := checklist.CountBySeverity(matched)

	// Index stored issues to expose the forward/resolve metadata the engine
	// shape does not carry.
	byId := make(map[uuid.UUID]*entity.QualityIssue, len(stored))
	for _, issue := range stored {
		byId[issue.Id] = issue
	}

	res := dto.SectionIssuesResponse{
		Issues: make([]dto.IssueResponse, len(matched)),
		Counts: dto.SeverityCountsResponse{
			Errors:   counts.Errors,
			Warnings: counts.Warnings,
			Info:     counts.Info,
		},
	}
	for i, issue := range matched {
		res.Issues[i] = toIssueResponse(byId[issue.Id])
	}
	return &res, nil
}

func (s *issueService) Resolve(ctx context.Context, req *dto.ResolveIssueRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	issue, err := uow.QualityIssueRepository().FindOne(ctx,
		specification.ByID{ID: req.IssueId},
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
	)
	if err != nil {
		return err
	}
	if issue == nil {
		return serverutils.NewNotFoundError("Issue not found")
	}
	if issue.Status == checklist.IssueStatusResolved {
		return nil // Already resolved, idempotent
	}

	now := time.Now()
	issue.Status = checklist.IssueStatusResolved
	issue.ResolvedAt = &now

	return uow.QualityIssueRepository().Update(ctx, issue)
}

func (s *issueService) Forward(ctx context.Context, req *dto.ForwardIssueRequest) (*dto.ForwardIssueResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	issue, err := uow.QualityIssueRepository().FindOne(ctx,
		specification.ByID{ID: req.IssueId},
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
	)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, serverutils.NewNotFoundError("Issue not found")
	}

	// Forwarding marks the issue as sent to the client; it stays open until a
	// caseworker resolves it.
	now := time.Now()
	issue.Forwarded = true
	issue.ForwardNote = req.Note
	issue.ForwardedAt = &now

	if err := uow.QualityIssueRepository().Update(ctx, issue); err != nil {
		return nil, err
	}
	return &dto.ForwardIssueResponse{Id: issue.Id}, nil
}

func toIssueResponse(issue *entity.QualityIssue) dto.IssueResponse {
	return dto.IssueResponse{
		Id:                    issue.Id,
		Severity:              string(issue.Severity),
		Title:                 issue.Title,
		Description:           issue.Description,
		LinkedChecklistItemId: issue.LinkedChecklistItemId,
		Status:                string(issue.Status),
		SuggestedAction:       issue.SuggestedAction,
		Forwarded:             issue.Forwarded,
		ForwardNote:           issue.ForwardNote,
		ForwardedAt:           issue.ForwardedAt,
		ResolvedAt:            issue.ResolvedAt,
		CreatedAt:             issue.CreatedAt,
	}
}
