package controller

import (
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEssentialsController interface {
	RegisterRoutes(r fiber.Router)
	Categories(ctx *fiber.Ctx) error
	ByCategory(ctx *fiber.Ctx) error
}

type essentialsController struct {
	service service.IEssentialsService
}

func NewEssentialsController(service service.IEssentialsService) IEssentialsController {
	return &essentialsController{service: service}
}

func (c *essentialsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/essentials")
	h.Get("/", c.Categories)
	h.Get("/:category", c.ByCategory)
}

func (c *essentialsController) Categories(ctx *fiber.Ctx) error {
	res, err := c.service.Categories(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *essentialsController) ByCategory(ctx *fiber.Ctx) error {
	res, err := c.service.ByCategory(ctx.UserContext(), ctx.Params("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
