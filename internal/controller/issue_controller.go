package controller

import (
	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IIssueController interface {
	RegisterRoutes(r fiber.Router)
	GetForSection(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
	Forward(ctx *fiber.Ctx) error
}

type issueController struct {
	issueService service.IIssueService
}

func NewIssueController(issueService service.IIssueService) IIssueController {
	return &issueController{
		issueService: issueService,
	}
}

func (c *issueController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/issue/v1/:applicationId")
	h.Get("section/:section", c.GetForSection)
	h.Put(":id/resolve", c.Resolve)
	h.Put(":id/forward", c.Forward)
}

func (c *issueController) GetForSection(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.issueService.GetForSection(ctx.Context(), applicationId, ctx.Params("section"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list issues", res))
}

func (c *issueController) Resolve(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	issueId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid issue id")
	}

	req := dto.ResolveIssueRequest{
		ApplicationId: applicationId,
		IssueId:       issueId,
	}
	if err := c.issueService.Resolve(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success resolve issue", nil))
}

func (c *issueController) Forward(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	issueId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid issue id")
	}

	var req dto.ForwardIssueRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ApplicationId = applicationId
	req.IssueId = issueId

	res, err := c.issueService.Forward(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success forward issue", res))
}
