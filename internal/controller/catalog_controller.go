package controller

import (
	"procure-ai-be/internal/entity"
	"procure-ai-be/internal/pkg/serverutils"
	"procure-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListVendors(ctx *fiber.Ctx) error
	CreateVendor(ctx *fiber.Ctx) error
	UpdateVendor(ctx *fiber.Ctx) error
	DeleteVendor(ctx *fiber.Ctx) error
	SearchMarketplace(ctx *fiber.Ctx) error
	GetSellerProfile(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog", serverutils.JwtMiddleware)
	h.Get("/vendors", c.ListVendors)
	h.Post("/vendors", c.adminOnly, c.CreateVendor)
	h.Put("/vendors/:id", c.adminOnly, c.UpdateVendor)
	h.Delete("/vendors/:id", c.adminOnly, c.DeleteVendor)
	h.Get("/marketplace/search", c.SearchMarketplace)
	h.Get("/marketplace/sellers/:id", c.GetSellerProfile)
}

// Vendor writes are restricted to admins. JwtMiddleware has already
// validated the token and stored the role claim.
func (c *catalogController) adminOnly(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != string(entity.UserRoleAdmin) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"code":    403,
			"message": "Access denied: Admins only",
		})
	}
	return ctx.Next()
}

func (c *catalogController) ListVendors(ctx *fiber.Ctx) error {
	res, err := c.service.ListVendors(ctx.Context(), ctx.Query("category"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
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

func (c *catalogController) CreateVendor(ctx *fiber.Ctx) error {
	var vendor entity.Vendor
	if err := ctx.BodyParser(&vendor); err != nil {
		return err
	}

	if err := c.service.CreateVendor(ctx.Context(), &vendor); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Vendor created",
		"data":    vendor,
	})
}

func (c *catalogController) UpdateVendor(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid vendor id",
		})
	}

	var vendor entity.Vendor
	if err := ctx.BodyParser(&vendor); err != nil {
		return err
	}
	vendor.Id = id

	if err := c.service.UpdateVendor(ctx.Context(), &vendor); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Vendor updated",
		"data":    vendor,
	})
}

func (c *catalogController) DeleteVendor(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "invalid vendor id",
		})
	}

	if err := c.service.DeleteVendor(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Vendor deleted",
		"data":    nil,
	})
}

func (c *catalogController) SearchMarketplace(ctx *fiber.Ctx) error {
	res, err := c.service.SearchMarketplace(ctx.Context(), ctx.Query("q"), ctx.QueryInt("limit", 10))
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
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

func (c *catalogController) GetSellerProfile(ctx *fiber.Ctx) error {
	res, err := c.service.GetSellerProfile(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"code":    502,
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
