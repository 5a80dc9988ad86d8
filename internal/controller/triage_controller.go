package controller

import (
	"abdochat-be/internal/dto"
	"abdochat-be/internal/pkg/serverutils"
	"abdochat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITriageController interface {
	RegisterRoutes(r fiber.Router)
	Validate(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
}

type triageController struct {
	triageService service.ITriageService
}

func NewTriageController(triageService service.ITriageService) ITriageController {
	return &triageController{
		triageService: triageService,
	}
}

func (c *triageController) RegisterRoutes(r fiber.Router) {
	r.Post("/validate", c.Validate)
	r.Post("/chat", c.Chat)
}

func (c *triageController) Validate(ctx *fiber.Ctx) error {
	var req dto.ValidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(c.triageService.Validate(ctx.Context(), &req))
}

func (c *triageController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.triageService.Chat(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
