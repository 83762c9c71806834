// FILE: internal/controller/billing_controller.go
package controller

import (
	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/pkg/serverutils"
	"cholestofit-be/internal/service"
	"cholestofit-be/pkg/billing"

	"github.com/gofiber/fiber/v2"
)

type IBillingController interface {
	RegisterRoutes(r fiber.Router)
	GetStatus(ctx *fiber.Ctx) error
	Deposit(ctx *fiber.Ctx) error
	ChangePlan(ctx *fiber.Ctx) error
	GetUsageHistory(ctx *fiber.Ctx) error
}

type billingController struct {
	service service.IBillingService
}

func NewBillingController(service service.IBillingService) IBillingController {
	return &billingController{service: service}
}

func (c *billingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/billing", serverutils.JwtMiddleware)
	h.Get("/status", c.GetStatus)
	h.Post("/deposit", c.Deposit)
	h.Post("/plan", c.ChangePlan)
	h.Get("/usage", c.GetUsageHistory)
}

// respondServiceError maps billing engine failures to their HTTP status
// and everything else to a 500.
func respondServiceError(ctx *fiber.Ctx, err error) error {
	if billingErr, ok := billing.AsError(err); ok {
		return ctx.Status(billingErr.HTTPStatus()).JSON(serverutils.ErrorResponse(billingErr.HTTPStatus(), billingErr.Message))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}

func (c *billingController) GetStatus(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetStatus(ctx.Context(), userId)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Billing status", res))
}

func (c *billingController) Deposit(ctx *fiber.Ctx) error {
	var req dto.DepositRequest
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

	res, err := c.service.Deposit(ctx.Context(), userId, &req)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Deposit successful", res))
}

func (c *billingController) ChangePlan(ctx *fiber.Ctx) error {
	var req dto.ChangePlanRequest
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

	res, err := c.service.ChangePlan(ctx.Context(), userId, &req)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Plan changed", res))
}

func (c *billingController) GetUsageHistory(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetUsageHistory(ctx.Context(), userId, limit, offset)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Usage history", res))
}
