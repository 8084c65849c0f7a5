package controller

import (
	"magiars-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Messages(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
}

func NewConversationController(conversationService service.IConversationService) IConversationController {
	return &conversationController{conversationService: conversationService}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversations")
	h.Get(":conversationId/messages", c.Messages)
	h.Get(":userId", c.List)
	h.Delete(":conversationId", c.Delete)
}

func (c *conversationController) List(ctx *fiber.Ctx) error {
	res, err := c.conversationService.ListByUser(ctx.Context(), ctx.Params("userId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *conversationController) Messages(ctx *fiber.Ctx) error {
	res, err := c.conversationService.ListMessages(ctx.Context(), ctx.Params("conversationId"))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *conversationController) Delete(ctx *fiber.Ctx) error {
	if err := c.conversationService.Delete(ctx.Context(), ctx.Params("conversationId")); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
