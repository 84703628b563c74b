package controller

import (
	"visa-casework-be/internal/dto"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalysisController interface {
	RegisterRoutes(r fiber.Router)
	GetStatus(ctx *fiber.Ctx) error
	Reanalyze(ctx *fiber.Ctx) error
	GetProgress(ctx *fiber.Ctx) error
}

type analysisController struct {
	analysisService service.IAnalysisService
}

func NewAnalysisController(analysisService service.IAnalysisService) IAnalysisController {
	return &analysisController{
		analysisService: analysisService,
	}
}

func (c *analysisController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analysis/v1/:applicationId")
	h.Get("section/:section/staleness", c.GetStatus)
	h.Post("section/:section/reanalyze", c.Reanalyze)
	h.Get("section/:section/progress", c.GetProgress)
}

func (c *analysisController) GetStatus(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.analysisService.GetStatus(ctx.Context(), applicationId, ctx.Params("section"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show staleness", res))
}

func (c *analysisController) Reanalyze(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	req := dto.ReanalyzeRequest{
		ApplicationId: applicationId,
		SectionKey:    ctx.Params("section"),
	}
	res, err := c.analysisService.StartReanalysis(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success start re-analysis", res))
}

func (c *analysisController) GetProgress(ctx *fiber.Ctx) error {
	applicationId, err := applicationIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.analysisService.GetProgress(ctx.Context(), applicationId, ctx.Params("section"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show progress", res))
}
