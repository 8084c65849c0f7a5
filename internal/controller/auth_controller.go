package controller

import (
	"fmt"
	"time"

	"magiars-be/internal/dto"
	"magiars-be/internal/pkg/serverutils"
	"magiars-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	LoginURL(ctx *fiber.Ctx) error
	MetaCallback(ctx *fiber.Ctx) error
	Verify(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	DataDeletionStatus(ctx *fiber.Ctx) error
	DataDeletion(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	clientURL   string
	jwtSecret   string
}

func NewAuthController(authService service.IAuthService, clientURL, jwtSecret string) IAuthController {
	return &authController{authService: authService, clientURL: clientURL, jwtSecret: jwtSecret}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("meta-login-url", c.LoginURL)
	h.Post("meta-callback", c.MetaCallback)
	h.Get("verify", serverutils.JwtMiddleware(c.jwtSecret), c.Verify)
	h.Post("logout", c.Logout)
	h.Get("data-deletion", c.DataDeletionStatus)
	h.Post("data-deletion", c.DataDeletion)
}

func (c *authController) LoginURL(ctx *fiber.Ctx) error {
	res, err := c.authService.LoginURL(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) MetaCallback(ctx *fiber.Ctx) error {
	var req dto.MetaCallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.MetaCallback(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Verify(ctx *fiber.Ctx) error {
	userId, _ := ctx.Locals("user_id").(string)
	res, err := c.authService.Verify(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Logout is stateless: the widget discards its token, the backend only acks.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.LogoutResponse{
		Success: true,
		Message: "Sesión cerrada",
	})
}

func (c *authController) DataDeletionStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(c.dataDeletionResponse())
}

// DataDeletion handles Meta's deletion callback. The provider retries on
// anything but a 200 with the fixed shape, so deletion failures are not
// surfaced in the response.
func (c *authController) DataDeletion(ctx *fiber.Ctx) error {
	var req dto.DataDeletionRequest
	_ = ctx.BodyParser(&req)

	if req.UserId != "" {
		_ = c.authService.DeleteByMetaId(ctx.Context(), req.UserId)
	}
	return ctx.JSON(c.dataDeletionResponse())
}

// dataDeletionResponse issues a fresh confirmation code per callback; Meta's
// status lookup treats the code as a per-request identifier.
func (c *authController) dataDeletionResponse() dto.DataDeletionResponse {
	return dto.DataDeletionResponse{
		Url:              c.clientURL + "/data-deletion-status",
		ConfirmationCode: fmt.Sprintf("deletion_%d", time.Now().UnixMilli()),
	}
}
