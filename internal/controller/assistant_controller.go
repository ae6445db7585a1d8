package controller

import (
	"errors"

	"medinfo-be/internal/dto"
	"medinfo-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant")
	h.Post("/chat", c.Chat)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	res, err := c.service.Chat(ctx.UserContext(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return badRequest(ctx, "Please enter a message.")
		}
		return fiber.NewError(fiber.StatusBadGateway, "The assistant is unavailable right now.")
	}
	return ctx.JSON(res)
}
