package controller

import (
	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/serverutils"
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBlogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type blogController struct {
	service service.IBlogService
}

func NewBlogController(service service.IBlogService) IBlogController {
	return &blogController{service: service}
}

func (c *blogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/blog")
	h.Get("/", c.List)
	h.Post("/", c.Create)
}

func (c *blogController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *blogController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateBlogPostRequest
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
