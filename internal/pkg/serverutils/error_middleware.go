package serverutils

import (
	"imbewu-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// shared response envelope, mapping domain error kinds onto HTTP statuses.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperrors.As(err); ok {
			status := statusForKind(appErr.Kind)
			resp := ErrorResponse(status, appErr.Message)
			if len(appErr.Fields) > 0 {
				return ctx.Status(status).JSON(fiber.Map{
					"success": false,
					"code":    status,
					"message": appErr.Message,
					"fields":  appErr.Fields,
				})
			}
			return ctx.Status(status).JSON(resp)
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Internal server error"))
	}
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindNetwork:
		return fiber.StatusBadGateway
	case apperrors.KindInitialization:
		return fiber.StatusServiceUnavailable
	case apperrors.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	case apperrors.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
