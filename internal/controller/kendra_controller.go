package controller

import (
	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/serverutils"
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IKendraController interface {
	RegisterRoutes(r fiber.Router)
	Nearby(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type kendraController struct {
	service service.IKendraService
}

func NewKendraController(service service.IKendraService) IKendraController {
	return &kendraController{service: service}
}

func (c *kendraController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/kendra")
	h.Get("/nearby", c.Nearby)
	h.Post("/", c.Create)
}

func (c *kendraController) Nearby(ctx *fiber.Ctx) error {
	if ctx.Query("lat") == "" || ctx.Query("lng") == "" {
		return badRequest(ctx, "lat and lng parameters are required")
	}

	var req dto.NearbyKendrasRequest
	if err := ctx.QueryParser(&req); err != nil {
		return badRequest(ctx, "lat and lng must be numbers")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.Nearby(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *kendraController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateKendraRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
