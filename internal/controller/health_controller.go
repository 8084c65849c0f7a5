package controller

import (
	"magiars-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Alert(ctx *fiber.Ctx) error
}

type healthController struct {
	log logger.ILogger
}

func NewHealthController(log logger.ILogger) IHealthController {
	return &healthController{log: log}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Post("/alerts", c.Alert)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

// Alert receives client-side error reports from the widget and logs them.
func (c *healthController) Alert(ctx *fiber.Ctx) error {
	var payload map[string]interface{}
	_ = ctx.BodyParser(&payload)

	c.log.Warn("alerts", "Client alert received", payload)
	return ctx.JSON(fiber.Map{"success": true})
}
