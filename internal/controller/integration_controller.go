package controller

import (
	"strconv"

	"magiars-be/internal/dto"
	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IIntegrationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
}

type integrationController struct {
	integrationService service.IIntegrationService
}

func NewIntegrationController(integrationService service.IIntegrationService) IIntegrationController {
	return &integrationController{integrationService: integrationService}
}

func (c *integrationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/integrations")
	h.Get("", c.List)
	h.Post("test", c.Test)
	h.Post("", c.Create)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *integrationController) List(ctx *fiber.Ctx) error {
	userId := ctx.Query("userId")
	if userId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "userId is required")
	}

	res, err := c.integrationService.ListByUser(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *integrationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateIntegrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.integrationService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *integrationController) Update(ctx *fiber.Ctx) error {
	id, err := integrationId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateIntegrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.integrationService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *integrationController) Delete(ctx *fiber.Ctx) error {
	id, err := integrationId(ctx)
	if err != nil {
		return err
	}

	if err := c.integrationService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *integrationController) Test(ctx *fiber.Ctx) error {
	return ctx.JSON(c.integrationService.TestConnection(ctx.Context()))
}

func integrationId(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid integration id")
	}
	return uint(id), nil
}
