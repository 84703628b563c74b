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

type IApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error)
	GetAll(ctx context.Context) ([]*dto.ShowApplicationResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowApplicationResponse, error)
	Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*dto.UpdateApplicationResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type applicationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewApplicationService(uowFactory unitofwork.RepositoryFactory) IApplicationService {
	return &applicationService{
		uowFactory: uowFactory,
	}
}

func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error) {
	// Unknown visa types are accepted; they render an empty checklist. We
	// still reject obvious garbage like empty strings via validation tags.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app := entity.Application{
		Id:            uuid.New(),
		ApplicantName: req.ApplicantName,
		ClientEmail:   req.ClientEmail,
		VisaType:      req.VisaType,
		CreatedAt:     time.Now(),
	}

	err := uow.ApplicationRepository().Create(ctx, &app)
	if err != nil {
		return nil, err
	}

	return &dto.CreateApplicationResponse{
		Id: app.Id,
	}, nil
}

func (s *applicationService) GetAll(ctx context.Context) ([]*dto.ShowApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// The workspace lists recent applications; the cap keeps the endpoint
	// bounded without pagination plumbing.
	apps, err := uow.ApplicationRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Count: 200},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ShowApplicationResponse, len(apps))
	for i, app := range apps {
		res[i] = toApplicationResponse(app)
	}
	return res, nil
}

func (s *applicationService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Application not found")
	}
	return toApplicationResponse(app), nil
}

func (s *applicationService) Update(ctx context.Context, req *dto.UpdateApplicationRequest) (*dto.UpdateApplicationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Application not found")
	}

	app.ApplicantName = req.ApplicantName
	app.ClientEmail = req.ClientEmail
	now := time.Now()
	app.UpdatedAt = &now

	if err := uow.ApplicationRepository().Update(ctx, app); err != nil {
		return nil, err
	}

	return &dto.UpdateApplicationResponse{Id: app.Id}, nil
}

func (s *applicationService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if app == nil {
		return serverutils.NewNotFoundError("Application not found")
	}
	return uow.ApplicationRepository().Delete(ctx, id)
}

func toApplicationResponse(app *entity.Application) *dto.ShowApplicationResponse {
	return &dto.ShowApplicationResponse{
		Id:            app.Id,
		ApplicantName: app.ApplicantName,
		ClientEmail:   app.ClientEmail,
		VisaType:      app.VisaType,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}
