// FILE: internal/controller/assistant_controller.go
package controller

import (
	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/pkg/serverutils"
	"cholestofit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant", serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
	h.Get("/history", c.History)
	h.Delete("/history", c.ClearHistory)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.AssistantChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Assistant reply", res))
}

func (c *assistantController) History(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GetHistory(ctx.Context(), userId)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}

func (c *assistantController) ClearHistory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	if err := c.service.ClearHistory(ctx.Context(), userId); err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Chat history cleared", nil))
}
