// FILE: internal/controller/health_controller.go
package controller

import (
	"errors"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/pkg/serverutils"
	"cholestofit-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
}

type healthController struct {
	service service.IHealthService
}

func NewHealthController(service service.IHealthService) IHealthController {
	return &healthController{service: service}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/health", serverutils.JwtMiddleware)

	bp := h.Group("/blood-pressure")
	bp.Post("/", c.CreateBloodPressure)
	bp.Get("/", c.ListBloodPressure)
	bp.Put("/:id", c.UpdateBloodPressure)
	bp.Delete("/:id", c.DeleteBloodPressure)

	lp := h.Group("/lipid-panels")
	lp.Post("/", c.CreateLipidPanel)
	lp.Get("/", c.ListLipidPanels)
	lp.Put("/:id", c.UpdateLipidPanel)
	lp.Delete("/:id", c.DeleteLipidPanel)

	nu := h.Group("/nutrition")
	nu.Post("/", c.CreateNutritionEntry)
	nu.Get("/", c.ListNutritionEntries)
	nu.Put("/:id", c.UpdateNutritionEntry)
	nu.Delete("/:id", c.DeleteNutritionEntry)
}

func recordIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(ctx.Params("id"))
}

func respondHealthError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}

// --- Blood pressure ---

func (c *healthController) CreateBloodPressure(ctx *fiber.Ctx) error {
	var req dto.CreateBloodPressureRequest
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
	res, err := c.service.CreateBloodPressure(ctx.Context(), userId, &req)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Reading recorded", res))
}

func (c *healthController) ListBloodPressure(ctx *fiber.Ctx) error {
	var query dto.HealthListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.ListBloodPressure(ctx.Context(), userId, &query)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Readings fetched", res))
}

func (c *healthController) UpdateBloodPressure(ctx *fiber.Ctx) error {
	id, err := recordIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	var req dto.UpdateBloodPressureRequest
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
	res, err := c.service.UpdateBloodPressure(ctx.Context(), userId, id, &req)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reading updated", res))
}

func (c *healthController) DeleteBloodPressure(ctx *fiber.Ctx) error {
	id, err := recordIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteBloodPressure(ctx.Context(), userId, id); err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Reading deleted", nil))
}

// --- Lipid panels ---

func (c *healthController) CreateLipidPanel(ctx *fiber.Ctx) error {
	var req dto.CreateLipidPanelRequest
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
	res, err := c.service.CreateLipidPanel(ctx.Context(), userId, &req)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Panel recorded", res))
}

func (c *healthController) ListLipidPanels(ctx *fiber.Ctx) error {
	var query dto.HealthListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.ListLipidPanels(ctx.Context(), userId, &query)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Panels fetched", res))
}

func (c *healthController) UpdateLipidPanel(ctx *fiber.Ctx) error {
	id, err := recordIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	var req dto.UpdateLipidPanelRequest
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
	res, err := c.service.UpdateLipidPanel(ctx.Context(), userId, id, &req)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Panel updated", res))
}

func (c *healthController) DeleteLipidPanel(ctx *fiber.Ctx) error {
	id, err := recordIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteLipidPanel(ctx.Context(), userId, id); err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Panel deleted", nil))
}

// --- Nutrition diary ---

func (c *healthController) CreateNutritionEntry(ctx *fiber.Ctx) error {
	var req dto.CreateNutritionEntryRequest
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
	res, err := c.service.CreateNutritionEntry(ctx.Context(), userId, &req)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Entry recorded", res))
}

func (c *healthController) ListNutritionEntries(ctx *fiber.Ctx) error {
	var query dto.HealthListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.ListNutritionEntries(ctx.Context(), userId, &query)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Entries fetched", res))
}

func (c *healthController) UpdateNutritionEntry(ctx *fiber.Ctx) error {
	id, err := recordIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	var req dto.UpdateNutritionEntryRequest
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
	res, err := c.service.UpdateNutritionEntry(ctx.Context(), userId, id, &req)
	if err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Entry updated", res))
}

func (c *healthController) DeleteNutritionEntry(ctx *fiber.Ctx) error {
	id, err := recordIdParam(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteNutritionEntry(ctx.Context(), userId, id); err != nil {
		return respondHealthError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Entry deleted", nil))
}
