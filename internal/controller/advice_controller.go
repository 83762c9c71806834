// FILE: internal/controller/advice_controller.go
package controller

import (
	"io"

	"cholestofit-be/internal/dto"
	"cholestofit-be/internal/pkg/serverutils"
	"cholestofit-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// maxMealPhotoBytes caps uploads before they reach the vision model.
const maxMealPhotoBytes = 8 * 1024 * 1024

type IAdviceController interface {
	RegisterRoutes(r fiber.Router)
	NutritionAdvice(ctx *fiber.Ctx) error
	GeneralAdvice(ctx *fiber.Ctx) error
	AnalyzeMealPhoto(ctx *fiber.Ctx) error
}

type adviceController struct {
	service service.IAdviceService
}

func NewAdviceController(service service.IAdviceService) IAdviceController {
	return &adviceController{service: service}
}

func (c *adviceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/advice", serverutils.JwtMiddleware)
	h.Post("/nutrition", c.NutritionAdvice)
	h.Post("/general", c.GeneralAdvice)
	h.Post("/meal-photo", c.AnalyzeMealPhoto)
}

func (c *adviceController) NutritionAdvice(ctx *fiber.Ctx) error {
	var req dto.AdviceRequest
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
	res, err := c.service.GetNutritionAdvice(ctx.Context(), userId, &req)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Nutrition advice", res))
}

func (c *adviceController) GeneralAdvice(ctx *fiber.Ctx) error {
	var req dto.AdviceRequest
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
	res, err := c.service.GetGeneralAdvice(ctx.Context(), userId, &req)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Health advice", res))
}

func (c *adviceController) AnalyzeMealPhoto(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "photo file is required"))
	}
	if fileHeader.Size > maxMealPhotoBytes {
		return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(serverutils.ErrorResponse(413, "photo exceeds 8MB limit"))
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType != "image/jpeg" && mimeType != "image/png" && mimeType != "image/webp" {
		return ctx.Status(fiber.StatusUnsupportedMediaType).JSON(serverutils.ErrorResponse(415, "photo must be jpeg, png or webp"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.AnalyzeMealPhoto(ctx.Context(), userId, imageData, mimeType)
	if err != nil {
		return respondServiceError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Meal photo analyzed", res))
}
