package service

import (
	"context"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/mailer"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/checklist"
	"visa-casework-be/pkg/visacatalog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDigestService interface {
	BuildDigest(ctx context.Context, applicationId uuid.UUID) ([]dto.DigestSectionResponse, error)
	SendDigest(ctx context.Context, req *dto.SendDigestRequest) (*dto.SendDigestResponse, error)
}

type digestService struct {
	uowFactory   unitofwork.RepositoryFactory
	catalog      *visacatalog.StaticCatalog
	emailService mailer.IEmailService
}

func NewDigestService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *visacatalog.StaticCatalog,
	emailService mailer.IEmailService,
) IDigestService {
	return &digestService{
		uowFactory:   uowFactory,
		catalog:      catalog,
		emailService: emailService,
	}
}

func (s *digestService) BuildDigest(ctx context.Context, applicationId uuid.UUID) ([]dto.DigestSectionResponse, error) {
	_, digest, err := s.buildDigest(ctx, applicationId)
	if err != nil {
		return nil, err
	}
	return toDigestResponse(digest), nil
}

func (s *digestService) SendDigest(ctx context.Context, req *dto.SendDigestRequest) (*dto.SendDigestResponse, error) {
	app, digest, err := s.buildDigest(ctx, req.ApplicationId)
	if err != nil {
		return nil, err
	}

	// Mailer failure surfaces as an upstream error; nothing was mutated.
	if err := s.emailService.SendChecklistDigest(app.ClientEmail, app.ApplicantName, digest); err != nil {
		return nil, serverutils.NewAppError(fiber.StatusBadGateway, "Failed to send digest email")
	}

	return &dto.SendDigestResponse{
		SentTo:   app.ClientEmail,
		Sections: toDigestResponse(digest),
	}, nil
}

func (s *digestService) buildDigest(ctx context.Context, applicationId uuid.UUID) (*entity.Application, []checklist.SectionDigest, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, items, err := loadApplicationItems(ctx, uow, s.catalog, applicationId)
	if err != nil {
		return nil, nil, err
	}

	stored, err := uow.QualityIssueRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
	)
	if err != nil {
		return nil, nil, err
	}

	return app, checklist.SummaryForSend(items, entity.IssuesToEngine(stored)), nil
}

func toDigestResponse(digest []checklist.SectionDigest) []dto.DigestSectionResponse {
	res := make([]dto.DigestSectionResponse, len(digest))
	for i, d := range digest {
		section := dto.DigestSectionResponse{
			Section:         string(d.Section),
			MissingFields:   make([]dto.ChecklistItemResponse, len(d.MissingFields)),
			MissingEvidence: make([]dto.EvidenceResponse, len(d.MissingEvidence)),
			OpenIssues:      make([]dto.IssueSummaryResponse, len(d.OpenIssues)),
		}
		for j, item := range d.MissingFields {
			section.MissingFields[j] = toChecklistItemResponse(item)
		}
		for j, ev := range d.MissingEvidence {
			section.MissingEvidence[j] = toEvidenceResponse(ev)
		}
		for j, issue := range d.OpenIssues {
			section.OpenIssues[j] = dto.IssueSummaryResponse{
				Id:       issue.Id,
				Severity: string(issue.Severity),
				Title:    issue.Title,
			}
		}
		res[i] = section
	}
	return res
}
