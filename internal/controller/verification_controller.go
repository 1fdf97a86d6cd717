// FILE: internal/controller/verification_controller.go
package controller

import (
	"imbewu-be/internal/dto"
	"imbewu-be/internal/pkg/serverutils"
	"imbewu-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IVerificationController interface {
	RegisterRoutes(r fiber.Router)
	LookupProduct(ctx *fiber.Ctx) error
	ManualLookup(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
	GetRecent(ctx *fiber.Ctx) error
}

type verificationController struct {
	service service.IVerificationService
}

func NewVerificationController(service service.IVerificationService) IVerificationController {
	return &verificationController{service: service}
}

func (c *verificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/verification")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/product/:barcode", c.LookupProduct)
	h.Post("/manual", c.ManualLookup)
	h.Get("/search", c.Search)
	h.Post("/preview", c.Preview)
	h.Get("/recent", c.GetRecent)
}

func (c *verificationController) LookupProduct(ctx *fiber.Ctx) error {
	barcode := ctx.Params("barcode")
	res, err := c.service.LookupProduct(ctx.Context(), currentUserId(ctx), barcode)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Verification report", res))
}

func (c *verificationController) ManualLookup(ctx *fiber.Ctx) error {
	var req dto.ManualLookupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.ManualLookup(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Verification report", res))
}

func (c *verificationController) Search(ctx *fiber.Ctx) error {
	terms := ctx.Query("query")
	res, err := c.service.SearchProducts(ctx.Context(), terms)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Search results", res))
}

func (c *verificationController) Preview(ctx *fiber.Ctx) error {
	var req dto.NewProductPreviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.PreviewNewProduct(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Product preview", res))
}

func (c *verificationController) GetRecent(ctx *fiber.Ctx) error {
	res, err := c.service.GetRecent(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recent verifications", res))
}
