package controller

import (
	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	CreateGroup(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Review(ctx *fiber.Ctx) error
	AddFile(ctx *fiber.Ctx) error
	RemoveFile(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) IDocumentController {
	return &documentController{
		documentService: documentService,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1/:applicationId")
	h.Post("", c.CreateGroup)
	h.Get("", c.GetAll)
	h.Put(":groupId/review", c.Review)
	h.Post(":groupId/file", c.AddFile)
	h.Delete(":groupId/file/:fileId", c.RemoveFile)
}

func applicationIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("applicationId"))
	if err != nil {
		return uuid.Nil, serverutils.NewBadRequestError("Invalid application id")
	}
	return id, nil
}

func (c *documentController) CreateGroup(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateDocumentGroupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ApplicationId = applicationId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewBadRequestError(err.Error())
	}

	res, err := c.documentService.CreateGroup(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create document group", res))
}

func (c *documentController) GetAll(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.documentService.GetAll(ctx.Context(), applicationId, ctx.Query("status"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list document groups", res))
}

func (c *documentController) Review(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid group id")
	}

	req := dto.ReviewDocumentGroupRequest{
		ApplicationId: applicationId,
		GroupId:       groupId,
	}
	if err := c.documentService.Review(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success review document group", nil))
}

func (c *documentController) AddFile(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid group id")
	}

	var req dto.AddDocumentFileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.ApplicationId = applicationId
	req.GroupId = groupId

	if err := serverutils.ValidateRequest(req); err != nil {
		return serverutils.NewBadRequestError(err.Error())
	}

	res, err := c.documentService.AddFile(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add file", res))
}

func (c *documentController) RemoveFile(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}
	groupId, err := uuid.Parse(ctx.Params("groupId"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid group id")
	}
	fileId, err := uuid.Parse(ctx.Params("fileId"))
	if err != nil {
		return serverutils.NewBadRequestError("Invalid file id")
	}

	if err := c.documentService.RemoveFile(ctx.Context(), applicationId, groupId, fileId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove file", nil))
}
