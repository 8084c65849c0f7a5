package controller

import (
	"magiars-be/internal/dto"
	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBusinessHoursController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Check(ctx *fiber.Ctx) error
}

type businessHoursController struct {
	hoursService service.IBusinessHoursService
}

func NewBusinessHoursController(hoursService service.IBusinessHoursService) IBusinessHoursController {
	return &businessHoursController{hoursService: hoursService}
}

func (c *businessHoursController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/business-hours")
	h.Get("check", c.Check)
	h.Get("", c.Get)
	h.Post("", c.Update)
}

func (c *businessHoursController) Get(ctx *fiber.Ctx) error {
	res, err := c.hoursService.Get(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *businessHoursController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateBusinessHoursRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.hoursService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *businessHoursController) Check(ctx *fiber.Ctx) error {
	res := dto.AvailabilityResponse{Available: c.hoursService.IsAvailable(ctx.Context())}
	if !res.Available {
		res.Reason = "outside_business_hours"
	}
	return ctx.JSON(res)
}
