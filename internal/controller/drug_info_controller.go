package controller

import (
	"errors"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/service"
	"medinfo-be/pkg/websearch"

	"github.com/gofiber/fiber/v2"
)

type IDrugInfoController interface {
	RegisterRoutes(r fiber.Router)
	ComparePrices(ctx *fiber.Ctx) error
	Report(ctx *fiber.Ctx) error
}

type drugInfoController struct {
	service service.IDrugInfoService
}

func NewDrugInfoController(service service.IDrugInfoService) IDrugInfoController {
	return &drugInfoController{service: service}
}

func (c *drugInfoController) RegisterRoutes(r fiber.Router) {
	r.Post("/price-comparison", c.ComparePrices)
	r.Post("/search", c.Report)
}

func (c *drugInfoController) ComparePrices(ctx *fiber.Ctx) error {
	var req dto.DrugQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	res, err := c.service.ComparePrices(ctx.UserContext(), &req)
	if err != nil {
		return drugInfoError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *drugInfoController) Report(ctx *fiber.Ctx) error {
	var req dto.DrugQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	res, err := c.service.Report(ctx.UserContext(), &req)
	if err != nil {
		return drugInfoError(ctx, err)
	}
	return ctx.JSON(res)
}

func drugInfoError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return badRequest(ctx, "Please enter a medicine name.")
	case errors.Is(err, service.ErrCompositionNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, websearch.ErrNotConfigured):
		return fiber.NewError(fiber.StatusServiceUnavailable, "Web search is not configured on the server.")
	default:
		return fiber.NewError(fiber.StatusBadGateway, "The drug information service is unavailable right now.")
	}
}
