package controller

import (
	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChecklistController interface {
	RegisterRoutes(r fiber.Router)
	GetChecklist(ctx *fiber.Ctx) error
	GetSections(ctx *fiber.Ctx) error
	SaveFieldEdits(ctx *fiber.Ctx) error
	ResetFieldEdit(ctx *fiber.Ctx) error
	GetDigest(ctx *fiber.Ctx) error
	SendDigest(ctx *fiber.Ctx) error
}

type checklistController struct {
	checklistService service.IChecklistService
	digestService    service.IDigestService
}

func NewChecklistController(
	checklistService service.IChecklistService,
	digestService service.IDigestService,
) IChecklistController {
	return &checklistController{
		checklistService: checklistService,
		digestService:    digestService,
	}
}

func (c *checklistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checklist/v1/:applicationId")
	h.Get("", c.GetChecklist)
	h.Get("sections", c.GetSections)
	h.Put("section/:section/fields", c.SaveFieldEdits)
	h.Delete("section/:section/fields/:itemId", c.ResetFieldEdit)
	h.Get("digest", c.GetDigest)
	h.Post("digest/send", c.SendDigest)
}

func (c *checklistController) GetChecklist(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.checklistService.GetChecklist(ctx.Context(), applicationId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show checklist", res))
}

func (c *checklistController) GetSections(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.checklistService.GetSectionSummaries(ctx.Context(), applicationId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list section summaries", res))
}

func (c *checklistController) SaveFieldEdits(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SaveFieldEditsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ApplicationId = applicationId
	req.SectionKey = ctx.Params("section")

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewBadRequestError(err.Error())
	}

	res, err := c.checklistService.SaveFieldEdits(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save field edits", res))
}

func (c *checklistController) ResetFieldEdit(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	err = c.checklistService.ResetFieldEdit(ctx.Context(), applicationId, ctx.Params("section"), ctx.Params("itemId"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success reset field edit", nil))
}

func (c *checklistController) GetDigest(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.digestService.BuildDigest(ctx.Context(), applicationId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success build digest", res))
}

func (c *checklistController) SendDigest(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	req := dto.SendDigestRequest{ApplicationId: applicationId}
	res, err := c.digestService.SendDigest(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success send digest", res))
}
