package controller

import (
	"magiars-be/internal/dto"
	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRatingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type ratingController struct {
	ratingService service.IRatingService
}

func NewRatingController(ratingService service.IRatingService) IRatingController {
	return &ratingController{ratingService: ratingService}
}

func (c *ratingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ratings")
	h.Post("", c.Create)
	h.Get("stats", c.Stats)
	h.Get("", c.List)
}

func (c *ratingController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateRatingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ratingService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *ratingController) List(ctx *fiber.Ctx) error {
	filters := service.RatingFilters{ConversationKey: ctx.Query("conversationId")}
	if raw := ctx.Query("userId"); raw != "" {
		userId, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
		}
		filters.UserId = &userId
	}

	res, err := c.ratingService.List(ctx.Context(), filters)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *ratingController) Stats(ctx *fiber.Ctx) error {
	var userId *uuid.UUID
	if raw := ctx.Query("userId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
		}
		userId = &parsed
	}

	res, err := c.ratingService.Stats(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
