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
	"visa-casework-be/pkg/visacatalog"

	"github.com/google/uuid"
)

type IQuestionnaireService interface {
	GetQuestionnaire(ctx context.Context, applicationId uuid.UUID) (*dto.QuestionnaireResponse, error)
	SaveAnswer(ctx context.Context, req *dto.SaveAnswerRequest) (*dto.SaveAnswerResponse, error)
}

type questionnaireService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalog          *visacatalog.StaticCatalog
	publisherService IPublisherService
}

func NewQuestionnaireService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *visacatalog.StaticCatalog,
	publisherService IPublisherService,
) IQuestionnaireService {
	return &questionnaireService{
		uowFactory:       uowFactory,
		catalog:          catalog,
		publisherService: publisherService,
	}
}

func (s *questionnaireService) GetQuestionnaire(ctx context.Context, applicationId uuid.UUID) (*dto.QuestionnaireResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: applicationId})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Application not found")
	}

	// Unknown visa type keeps the workspace usable: no questions, no answers.
	questions, _ := s.catalog.QuestionsFor(app.VisaType)

	answers, err := uow.QuestionnaireAnswerRepository().FindAll(ctx,
		specification.ByApplicationID{ApplicationID: applicationId},
	)
	if err != nil {
		return nil, err
	}

	res := dto.QuestionnaireResponse{
		Questions: make([]dto.QuestionResponse, len(questions)),
		Answers:   make([]dto.AnswerResponse, len(answers)),
	}
	for i, q := range questions {
		res.Questions[i] = dto.QuestionResponse{
			Id:      q.Id,
			Text:    q.Text,
			Kind:    string(q.Kind),
			Options: q.Options,
		}
	}
	for i, a := range answers {
		res.Answers[i] = dto.AnswerResponse{
			QuestionId: a.QuestionId,
			Value:      a.Value,
			UpdatedAt:  a.UpdatedAt,
			CreatedAt:  a.CreatedAt,
		}
	}
	return &res, nil
}

func (s *questionnaireService) SaveAnswer(ctx context.Context, req *dto.SaveAnswerRequest) (*dto.SaveAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: req.ApplicationId})
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, serverutils.NewNotFoundError("Application not found")
	}

	question, ok := findQuestion(s.catalog, app.VisaType, req.QuestionId)
	if !ok {
		return nil, serverutils.NewBadRequestError("Unknown question for this visa type")
	}

	if err := validateAnswerValue(question, req.Value); err != nil {
		return nil, serverutils.NewBadRequestError(err.Error())
	}

	answer := entity.QuestionnaireAnswer{
		Id:            uuid.New(),
		ApplicationId: req.ApplicationId,
		QuestionId:    req.QuestionId,
		Value:         req.Value,
		CreatedAt:     time.Now(),
	}

	// Re-answering keeps the stored row's id; the upsert only replaces the
	// value.
	existing, err := uow.QuestionnaireAnswerRepository().FindOne(ctx,
		specification.ByApplicationID{ApplicationID: req.ApplicationId},
		specification.ByQuestionID{QuestionID: req.QuestionId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		answer.Id = existing.Id
	}

	if err := uow.QuestionnaireAnswerRepository().Upsert(ctx, &answer); err != nil {
		return nil, err
	}

	s.publishInvalidate(ctx, req.ApplicationId)

	return &dto.SaveAnswerResponse{Id: answer.Id}, nil
}

func findQuestion(catalog *visacatalog.StaticCatalog, visaType, questionId string) (visacatalog.Question, bool) {
	questions, ok := catalog.QuestionsFor(visaType)
	if !ok {
		return visacatalog.Question{}, false
	}
	for _, q := range questions {
		if q.Id == questionId {
			return q, true
		}
	}
	return visacatalog.Question{}, false
}

// validateAnswerValue applies the question's field kind before persisting.
func validateAnswerValue(q visacatalog.Question, value string) error {
	def := checklist.FieldDef{
		Key:     q.Id,
		Kind:    q.Kind,
		Options: q.Options,
	}
	return checklist.ValidateValue(def, value)
}

func (s *questionnaireService) publishInvalidate(ctx context.Context, applicationId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.ChecklistInvalidateMessage{ApplicationId: applicationId})
	if err != nil {
		return
	}
	_ = s.publisherService.Publish(ctx, payload)
}
