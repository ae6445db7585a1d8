package controller

import (
	"errors"
	"strings"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/serverutils"
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMedicineController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Generic(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type medicineController struct {
	service service.IMedicineService
}

func NewMedicineController(service service.IMedicineService) IMedicineController {
	return &medicineController{service: service}
}

func (c *medicineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/medicines")
	h.Get("/search", c.Search)
	h.Get("/generic", c.Generic)
	h.Post("/", c.Create)
}

func (c *medicineController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return badRequest(ctx, "q parameter is required")
	}

	res, err := c.service.Search(ctx.UserContext(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *medicineController) Generic(ctx *fiber.Ctx) error {
	name := strings.TrimSpace(ctx.Query("name"))
	if name == "" {
		return badRequest(ctx, "name parameter is required")
	}

	res, err := c.service.Generic(ctx.UserContext(), name)
	if err != nil {
		var notFound *service.GenericNotFoundError
		if errors.As(err, &notFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(dto.GenericNotFoundResponse{
				Error:      notFound.Error(),
				Suggestion: notFound.Suggestion,
			})
		}
		return err
	}
	return ctx.JSON(res)
}

func (c *medicineController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateMedicineRequest
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
