package controller

import (
	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQuestionnaireController interface {
	RegisterRoutes(r fiber.Router)
	GetQuestionnaire(ctx *fiber.Ctx) error
	SaveAnswer(ctx *fiber.Ctx) error
}

type questionnaireController struct {
	questionnaireService service.IQuestionnaireService
}

func NewQuestionnaireController(questionnaireService service.IQuestionnaireService) IQuestionnaireController {
	return &questionnaireController{
		questionnaireService: questionnaireService,
	}
}

func (c *questionnaireController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/questionnaire/v1/:applicationId")
	h.Get("", c.GetQuestionnaire)
	h.Put("answer", c.SaveAnswer)
}

func (c *questionnaireController) GetQuestionnaire(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.questionnaireService.GetQuestionnaire(ctx.Context(), applicationId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show questionnaire", res))
}

func (c *questionnaireController) SaveAnswer(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ApplicationId = applicationId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewBadRequestError(err.Error())
	}

	res, err := c.questionnaireService.SaveAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save answer", res))
}
