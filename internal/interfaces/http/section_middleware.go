package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// sectionChecker es el contrato mínimo que necesita el middleware para verificar secciones.
// Lo implementa *usecase.NavegacionService.
type sectionChecker interface {
	CanAccess(tipo entity.TipoPersona, seccion string) bool
}

// RequireSection devuelve un middleware que verifica que el tipo de la sesión pueda ver
// la sección. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 Unauthorized → no hay sesión en el contexto.
//   - 403 Forbidden    → la sección no está en el menú de ese tipo de persona.
func RequireSection(seccion string, checker sectionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "sesión no encontrada",
			})
		}
		if !checker.CanAccess(sess.User.Tipo, seccion) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la sección '" + seccion + "' no está disponible para " + string(sess.User.Tipo),
			})
		}
		return c.Next()
	}
}
