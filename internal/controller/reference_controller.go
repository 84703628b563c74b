package controller

import (
	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReferenceController interface {
	RegisterRoutes(r fiber.Router)
	ListForSection(ctx *fiber.Ctx) error
	Link(ctx *fiber.Ctx) error
	Unlink(ctx *fiber.Ctx) error
}

type referenceController struct {
	referenceService service.IReferenceService
}

func NewReferenceController(referenceService service.IReferenceService) IReferenceController {
	return &referenceController{
		referenceService: referenceService,
	}
}

func (c *referenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reference/v1/:applicationId")
	h.Get("section/:section", c.ListForSection)
	h.Post("section/:section/link/:groupId", c.Link)
	h.Delete("section/:section/link/:groupId", c.Unlink)
}

func (c *referenceController) ListForSection(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.referenceService.ListForSection(ctx.Context(), applicationId, ctx.Params("section"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list references", res))
}

func (c *referenceController) Link(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid group id")
	}

	req := dto.LinkReferenceRequest{
		ApplicationId: applicationId,
		SectionKey:    ctx.Params("section"),
		GroupId:       groupId,
	}

	res, err := c.referenceService.Link(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success link reference", res))
}

func (c *referenceController) Unlink(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid group id")
	}

	if err := c.referenceService.Unlink(ctx.Context(), applicationId, ctx.Params("section"), groupId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success unlink reference", nil))
}
