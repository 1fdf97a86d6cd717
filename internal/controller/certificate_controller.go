// FILE: internal/controller/certificate_controller.go
package controller

import (
	"imbewu-be/internal/dto"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/serverutils"
	"imbewu-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICertificateController interface {
	RegisterRoutes(r fiber.Router)
	Issue(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type certificateController struct {
	service service.ICertificateService
}

func NewCertificateController(service service.ICertificateService) ICertificateController {
	return &certificateController{service: service}
}

func (c *certificateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/certificates")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Issue)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
}

func (c *certificateController) Issue(ctx *fiber.Ctx) error {
	var req dto.IssueCertificateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Issue(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Certificate issued", res))
}

func (c *certificateController) List(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Certificates", res))
}

func (c *certificateController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.Validation("Invalid certificate id")
	}

	res, err := c.service.Get(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Certificate", res))
}
