// FILE: internal/controller/scanner_controller.go
package controller

import (
	"imbewu-be/internal/dto"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/serverutils"
	"imbewu-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IScannerController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Detect(ctx *fiber.Ctx) error
	Capture(ctx *fiber.Ctx) error
	SwitchCamera(ctx *fiber.Ctx) error
	SwitchMode(ctx *fiber.Ctx) error
	Stop(ctx *fiber.Ctx) error
}

type scannerController struct {
	scanner      service.IScannerService
	verification service.IVerificationService
}

func NewScannerController(scanner service.IScannerService, verification service.IVerificationService) IScannerController {
	return &scannerController{
		scanner:      scanner,
		verification: verification,
	}
}

func (c *scannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scanner")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/start", c.Start)
	h.Post("/:id/detect", c.Detect)
	h.Post("/:id/capture", c.Capture)
	h.Post("/:id/switch-camera", c.SwitchCamera)
	h.Post("/:id/mode", c.SwitchMode)
	h.Post("/:id/stop", c.Stop)
}

func sessionIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperrors.Validation("Invalid session id")
	}
	return id, nil
}

func (c *scannerController) Start(ctx *fiber.Ctx) error {
	res, err := c.scanner.Start(ctx.Context(), currentUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Scanner session", res))
}

// Detect receives a barcode recognized by the capture engine. Accepted
// detections stop the engine and return the full verification report; stale
// ones are acknowledged without a report.
func (c *scannerController) Detect(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.DetectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	userId := currentUserId(ctx)
	accepted, err := c.scanner.Detect(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}
	if !accepted {
		return ctx.JSON(serverutils.SuccessResponse[any]("Stale detection discarded", nil))
	}

	report, err := c.verification.LookupProduct(ctx.Context(), userId, req.Code)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Verification report", report))
}

func (c *scannerController) Capture(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.scanner.Capture(ctx.Context(), currentUserId(ctx), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Capture requested", nil))
}

func (c *scannerController) SwitchCamera(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.scanner.SwitchFacing(ctx.Context(), currentUserId(ctx), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Camera switched", res))
}

func (c *scannerController) SwitchMode(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SwitchModeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.scanner.SwitchMode(ctx.Context(), currentUserId(ctx), sessionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mode switched", res))
}

func (c *scannerController) Stop(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.scanner.Stop(ctx.Context(), currentUserId(ctx), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Scanner stopped", nil))
}
