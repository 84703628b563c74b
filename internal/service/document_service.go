package service

import (
	"context"
	"encoding/json"
	"time"

	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/specification"
	"visa-casework-be/internal/repository/unitofwork"
	"visa-casework-be/pkg/checklist"

	"github.com/google/uuid"
)

type IDocumentService interface {
	CreateGroup(ctx context.Context, req *dto.CreateDocumentGroupRequest) (*dto.CreateDocumentGroupResponse, error)
	GetAll(ctx context.Context, applicationId uuid.UUID, status string) ([]*dto.DocumentGroupResponse, error)
	Review(ctx context.Context, req *dto.ReviewDocumentGroupRequest) error
	AddFile(ctx context.Context, req *dto.AddDocumentFileRequest) (*dto.AddDocumentFileResponse, error)
	RemoveFile(ctx context.Context, applicationId, groupId, fileId uuid.UUID) error
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *documentService) CreateGroup(ctx context.Context, req *dto.CreateDocumentGroupRequest) (*dto.CreateDocumentGroupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := checklist.GroupStatusPending
	if req.IsSpecial {
		// Special categories (system-generated forms) are auto-confirmed.
		status = checklist.GroupStatusReviewed
	}

	group := entity.DocumentGroup{
		Id:            uuid.New(),
		ApplicationId: req.ApplicationId,
		Title:         req.Title,
		Status:        status,
		IsSpecial:     req.IsSpecial,
		CreatedAt:     time.Now(),
	}

	if err := uow.DocumentGroupRepository().Create(ctx, &group); err != nil {
		return nil, err
	}

	s.publishInvalidate(ctx, req.ApplicationId)

	return &dto.CreateDocumentGroupResponse{Id: group.Id}, nil
}

func (s *documentService) GetAll(ctx context.Context, applicationId uuid.UUID, status string) ([]*dto.DocumentGroupResponse, error) {
	specs := []specification.Specification{
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.WithFiles{},
		specification.OrderBy{Field: "created_at"},
	}
	if status != "" {
		if status != string(checklist.GroupStatusPending) && status != string(checklist.GroupStatusReviewed) {
			return nil, serverutils.NewBadRequestError("Unknown group status filter")
		}
		specs = append(specs, specification.ByGroupStatus{Status: status})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	groups, err := uow.DocumentGroupRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.DocumentGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = toDocumentGroupResponse(g)
	}
	return res, nil
}

func (s *documentService) Review(ctx context.Context, req *dto.ReviewDocumentGroupRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.DocumentGroupRepository().FindOne(ctx,
		specification.ByID{ID: req.GroupId},
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
	)
	if err != nil {
		return err
	}
	if group == nil {
		return serverutils.NewNotFoundError("Document group not found")
	}
	if group.Status == checklist.GroupStatusReviewed {
		return nil // Already reviewed, idempotent
	}

	group.Status = checklist.GroupStatusReviewed
	now := time.Now()
	group.UpdatedAt = &now

	if err := uow.DocumentGroupRepository().Update(ctx, group); err != nil {
		return err
	}

	s.publishInvalidate(ctx, req.ApplicationId)
	return nil
}

func (s *documentService) AddFile(ctx context.Context, req *dto.AddDocumentFileRequest) (*dto.AddDocumentFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.DocumentGroupRepository().FindOne(ctx,
		specification.ByID{ID: req.GroupId},
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
	)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, serverutils.NewNotFoundError("Document group not found")
	}

	file := entity.DocumentFile{
		Id:        uuid.New(),
		GroupId:   group.Id,
		FileName:  req.FileName,
		PageCount: req.PageCount,
		CreatedAt: time.Now(),
	}

	if err := uow.DocumentGroupRepository().AddFile(ctx, &file); err != nil {
		return nil, err
	}

	s.publishInvalidate(ctx, req.ApplicationId)

	return &dto.AddDocumentFileResponse{Id: file.Id}, nil
}

func (s *documentService) RemoveFile(ctx context.Context, applicationId, groupId, fileId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	group, err := uow.DocumentGroupRepository().FindOne(ctx,
		specification.ByID{ID: groupId},
		specification.ByApplicationID{ApplicationID: applicationId},
		specification.WithFiles{},
	)
	if err != nil {
		return err
	}
	if group == nil {
		return serverutils.NewNotFoundError("Document group not found")
	}

	found := false
	for _, f := range group.Files {
		if f.Id == fileId {
			found = true
			break
		}
	}
	if !found {
		return serverutils.NewNotFoundError("File not found in group")
	}

	// Soft flag only; the row survives for audit.
	if err := uow.DocumentGroupRepository().MarkFileRemoved(ctx, groupId, fileId); err != nil {
		return err
	}

	s.publishInvalidate(ctx, applicationId)
	return nil
}

// publishInvalidate signals consumers that checklist inputs changed. Failures
// are swallowed; the cache simply stays warm until it is rewritten.
func (s *documentService) publishInvalidate(ctx context.Context, applicationId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.ChecklistInvalidateMessage{ApplicationId: applicationId})
	if err != nil {
		return
	}
	_ = s.publisherService.Publish(ctx, payload)
}

func toDocumentGroupResponse(g *entity.DocumentGroup) *dto.DocumentGroupResponse {
	files := make([]dto.DocumentFileResponse, len(g.Files))
	for i, f := range g.Files {
		files[i] = dto.DocumentFileResponse{
			Id:        f.Id,
			FileName:  f.FileName,
			PageCount: f.PageCount,
			Removed:   f.Removed,
			CreatedAt: f.CreatedAt,
		}
	}
	return &dto.DocumentGroupResponse{
		Id:         g.Id,
		Title:      g.Title,
		Status:     string(g.Status),
		IsSpecial:  g.IsSpecial,
		IsLinkable: g.ToEngine().Linkable(),
		Files:      files,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}
