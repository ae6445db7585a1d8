package controller

import (
	"errors"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/pkg/serverutils"
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.service.Register(ctx.UserContext(), &req); err != nil {
		if errors.Is(err, service.ErrUserExists) || errors.Is(err, service.ErrInvalidInput) {
			return badRequest(ctx, err.Error())
		}
		return err
	}
	return ctx.JSON(serverutils.MessageResponse("User registered successfully"))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
		}
		return err
	}
	return ctx.JSON(res)
}

func badRequest(ctx *fiber.Ctx, detail string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, detail))
}
