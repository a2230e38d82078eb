package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/trabajo"
)

// LocalError guarda el error de la respuesta para el logger de requests.
const LocalError = "error"

// respondError traduce los errores de dominio a status HTTP y ErrorResponse.
// Los mensajes de validación y de stock se devuelven tal cual para mostrarlos en el formulario.
func respondError(c *fiber.Ctx, err error) error {
	c.Locals(LocalError, err)
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var (
		verr  *domain.ValidationError
		serr  *trabajo.StockError
		dserr *trabajo.DisponibilidadError
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: verr.Error(), Fields: verr.Fields}
	case errors.As(err, &serr):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: serr.Error(), Details: serr.Detalles()}
	case errors.As(err, &dserr):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: dserr.Error(), Fields: map[string]string{"cantidad": dserr.Error()},
		}
	case errors.Is(err, domain.ErrEstadoRetroceso):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: domain.ErrEstadoRetroceso.Error()}
	case errors.Is(err, domain.ErrEstadoInvalido):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrConfirmacionNoEncontrada):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "CONFIRMATION_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrBorradorNoIniciado):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DRAFT_NOT_STARTED", Message: err.Error()}
	case errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, vuelva a ingresar"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusUnprocessableEntity, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "UPSTREAM", Message: "la API del taller no respondió correctamente"}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
