package controller

import (
	"strconv"

	"magiars-be/internal/dto"
	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEscalationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
	Resolve(ctx *fiber.Ctx) error
}

type escalationController struct {
	escalationService service.IEscalationService
}

func NewEscalationController(escalationService service.IEscalationService) IEscalationController {
	return &escalationController{escalationService: escalationService}
}

func (c *escalationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/escalations")
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Post(":id/reply", c.Reply)
	h.Post(":id/resolve", c.Resolve)
}

func (c *escalationController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEscalationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.escalationService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *escalationController) List(ctx *fiber.Ctx) error {
	filters := service.EscalationFilters{Status: ctx.Query("status")}
	if raw := ctx.Query("userId"); raw != "" {
		userId, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
		}
		filters.UserId = &userId
	}

	res, err := c.escalationService.List(ctx.Context(), filters)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *escalationController) Reply(ctx *fiber.Ctx) error {
	id, err := escalationId(ctx)
	if err != nil {
		return err
	}

	var req dto.EscalationReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.escalationService.Reply(ctx.Context(), id, &req); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *escalationController) Resolve(ctx *fiber.Ctx) error {
	id, err := escalationId(ctx)
	if err != nil {
		return err
	}

	if err := c.escalationService.Resolve(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func escalationId(ctx *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid escalation id")
	}
	return uint(id), nil
}
