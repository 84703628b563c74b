package service

import (
	"context"
	"time"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReferenceService interface {
	Link(ctx context.Context, req *dto.LinkReferenceRequest) (*dto.LinkReferenceResponse, error)
	Unlink(ctx context.Context, applicationId uuid.UUID, sectionKey string, groupId uuid.UUID) error
	ListForSection(ctx context.Context, applicationId uuid.UUID, sectionKey string) ([]*dto.ReferenceResponse, error)
}

type referenceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReferenceService(uowFactory unitofwork.RepositoryFactory) IReferenceService {
	return &referenceService{
		uowFactory: uowFactory,
	}
}

func (s *referenceService) Link(ctx context.Context, req *dto.LinkReferenceRequest) (*dto.LinkReferenceResponse, error) {
	if !entity.IsValidSectionKey(req.SectionKey) {
		return nil, serverutils.NewBadRequestError("Unknown section key")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	group, err := uow.DocumentGroupRepository().FindOne(ctx,
		specification.ByID{ID: req.GroupId},
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
		specification.WithFiles{},
	)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Document group not found")
	}
	if !group.ToEngine().Linkable() {
		return nil, serverutils.NewConflictError("Group must be reviewed with at least one active file before linking")
	}

	// Idempotent: linking an already-linked group returns the existing row.
	existing, err := uow.SectionReferenceRepository().FindOne(ctx,
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
		specification.BySectionKey{SectionKey: req.SectionKey},
		specification.ByGroupID{GroupID: req.GroupId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.LinkReferenceResponse{Id: existing.Id}, nil
	}

	siblings, err := uow.SectionReferenceRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
		specification.BySectionKey{SectionKey: req.SectionKey},
	)
	if err != nil {
		return nil, err
	}

	ref := entity.SectionReference{
		Id:            uuid.New(),
		ApplicationId: req.ApplicationId,
		SectionKey:    req.SectionKey,
		GroupId:       req.GroupId,
		Position:      len(siblings),
		CreatedAt:     time.Now(),
	}

	if err := uow.SectionReferenceRepository().Create(ctx, &ref); err != nil {
		return nil, err
	}
	return &dto.LinkReferenceResponse{Id: ref.Id}, nil
}

func (s *referenceService) Unlink(ctx context.Context, applicationId uuid.UUID, sectionKey string, groupId uuid.UUID) error {
	if !entity.IsValidSectionKey(sectionKey) {
		return serverutils.NewBadRequestError("Unknown section key")
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SectionReferenceRepository().Delete(ctx, applicationId, sectionKey, groupId)
}

func (s *referenceService) ListForSection(ctx context.Context, applicationId uuid.UUID, sectionKey string) ([]*dto.ReferenceResponse, error) {
	if !entity.IsValidSectionKey(sectionKey) {
		return nil, serverutils.NewBadRequestError("Unknown section key")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	refs, err := uow.SectionReferenceRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.BySectionKey{SectionKey: sectionKey},
	)
	if err != nil {
		return nil, err
	}

	// Resolve group titles for display.
	res := make([]*dto.ReferenceResponse, len(refs))
	for i, ref := range refs {
		title := ""
		group, err := uow.DocumentGroupRepository().FindOne(ctx, specification.ByID{ID: ref.GroupId})
		if err != nil {
			return nil, err
		}
		if group != nil {
			title = group.Title
		}
		res[i] = &dto.ReferenceResponse{
			Id:         ref.Id,
			SectionKey: ref.SectionKey,
			GroupId:    ref.GroupId,
			GroupTitle: title,
			Position:   ref.Position,
			CreatedAt:  ref.CreatedAt,
		}
	}
	return res, nil
}
