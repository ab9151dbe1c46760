package controller

import (
	"procure-ai-be/internal/dto"
	"procure-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProcurementController interface {
	RegisterRoutes(r fiber.Router)
	Recommend(ctx *fiber.Ctx) error
	GenerateQuestions(ctx *fiber.Ctx) error
}

// procurementController exposes the stateless procurement endpoints used
// by non-chat clients (forms, integrations).
type procurementController struct {
	service service.IRecommendService
}

func NewProcurementController(service service.IRecommendService) IProcurementController {
	return &procurementController{service: service}
}

func (c *procurementController) RegisterRoutes(r fiber.Router) {
	r.Post("/recommend", c.Recommend)
	r.Post("/generate_questions", c.GenerateQuestions)
}

func (c *procurementController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Recommend(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}

func (c *procurementController) GenerateQuestions(ctx *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.GenerateQuestions(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OK",
		"data":    res,
	})
}
