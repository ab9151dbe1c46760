package controller

import (
	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOAuthController interface {
	RegisterRoutes(r fiber.Router)
	GoogleToken(ctx *fiber.Ctx) error
	GoogleLogin(ctx *fiber.Ctx) error
	GoogleCallback(ctx *fiber.Ctx) error
}

type oauthController struct {
	service service.IOAuthService
}

func NewOAuthController(service service.IOAuthService) IOAuthController {
	return &oauthController{service: service}
}

func (c *oauthController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/google", c.GoogleToken)
	h.Get("/google/login", c.GoogleLogin)
	h.Get("/google/callback", c.GoogleCallback)
}

// GoogleToken handles the one-tap flow: the SPA posts Google's id_token.
func (c *oauthController) GoogleToken(ctx *fiber.Ctx) error {
	var req dto.GoogleTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if req.Credential == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "credential is required",
		})
	}

	res, err := c.service.VerifyGoogleToken(ctx.Context(), req.Credential)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

func (c *oauthController) GoogleLogin(ctx *fiber.Ctx) error {
	url, err := c.service.GetLoginURL("google")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.Redirect(url, fiber.StatusTemporaryRedirect)
}

func (c *oauthController) GoogleCallback(ctx *fiber.Ctx) error {
	code := ctx.Query("code")
	if code == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "missing authorization code",
		})
	}

	res, err := c.service.HandleCallback(ctx.Context(), "google", code)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"code":    401,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}
