// FILE: internal/controller/appointment_controller.go
package controller

import (
	"time"

	"imbewu-be/internal/dto"
	"imbewu-be/internal/pkg/apperrors"
	"imbewu-be/internal/pkg/serverutils"
	"imbewu-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router)
	ListContributors(ctx *fiber.Ctx) error
	CheckAvailability(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type appointmentController struct {
	service service.IAppointmentService
}

func NewAppointmentController(service service.IAppointmentService) IAppointmentController {
	return &appointmentController{service: service}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/appointments")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/contributors", c.ListContributors)
	h.Get("/availability", c.CheckAvailability)
	h.Post("/", c.Create)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Delete("/:id", c.Cancel)
}

func (c *appointmentController) ListContributors(ctx *fiber.Ctx) error {
	affiliation := ctx.Query("affiliation")
	search := ctx.Query("search", ctx.Query("q"))
	res, err := c.service.ListContributors(ctx.Context(), affiliation, search)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Contributors", res))
}

func (c *appointmentController) CheckAvailability(ctx *fiber.Ctx) error {
	contributorId, err := uuid.Parse(ctx.Query("contributor_id"))
	if err != nil {
		return apperrors.Validation("Invalid contributor id")
	}
	start, err := time.Parse(time.RFC3339, ctx.Query("start"))
	if err != nil {
		return apperrors.Validation("Invalid start time")
	}
	end, err := time.Parse(time.RFC3339, ctx.Query("end"))
	if err != nil {
		return apperrors.Validation("Invalid end time")
	}

	res, err := c.service.CheckAvailability(ctx.Context(), contributorId, start, end)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Availability", res))
}

func (c *appointmentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Appointment booked", res))
}

func (c *appointmentController) List(ctx *fiber.Ctx) error {
	filter := service.AppointmentFilter{
		Status:   ctx.Query("status"),
		Upcoming: ctx.QueryBool("upcoming"),
		Past:     ctx.QueryBool("past"),
	}

	res, err := c.service.List(ctx.Context(), currentUserId(ctx), filter)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Appointments", res))
}

func (c *appointmentController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.Validation("Invalid appointment id")
	}

	res, err := c.service.Get(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Appointment", res))
}

func (c *appointmentController) Cancel(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperrors.Validation("Invalid appointment id")
	}

	if err := c.service.Cancel(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Appointment cancelled", nil))
}
