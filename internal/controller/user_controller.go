package controller

import (
	"errors"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/serverutils"
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	SaveMedicine(ctx *fiber.Ctx) error
	GetSaved(ctx *fiber.Ctx) error
}

type userController struct {
	service   service.IUserService
	jwtSecret string
}

func NewUserController(service service.IUserService, jwtSecret string) IUserController {
	return &userController{service: service, jwtSecret: jwtSecret}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users", serverutils.OptionalJwtMiddleware(c.jwtSecret))
	h.Post("/save", c.SaveMedicine)
	h.Get("/saved/:username", c.GetSaved)
}

func (c *userController) SaveMedicine(ctx *fiber.Ctx) error {
	var req dto.SaveMedicineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}
	if !serverutils.AuthorizedFor(ctx, req.Username) {
		return forbidden(ctx)
	}

	res, err := c.service.SaveMedicine(ctx.UserContext(), &req)
	if err != nil {
		return mapUserError(ctx, err)
	}
	return ctx.JSON(res)
}

func (c *userController) GetSaved(ctx *fiber.Ctx) error {
	username := ctx.Params("username")
	if !serverutils.AuthorizedFor(ctx, username) {
		return forbidden(ctx)
	}

	res, err := c.service.GetSaved(ctx.UserContext(), username)
	if err != nil {
		return mapUserError(ctx, err)
	}
	return ctx.JSON(res)
}

func mapUserError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	case errors.Is(err, service.ErrMedicineNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return err
}

func forbidden(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Token does not match username"))
}
