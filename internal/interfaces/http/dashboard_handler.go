package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/detailing-dashboard/internal/application/analytics"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// DashboardHandler maneja el panel principal y el menú de navegación.
type DashboardHandler struct {
	uc         *appanalytics.DashboardUseCase
	navegacion *usecase.NavegacionService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, navegacion *usecase.NavegacionService) *DashboardHandler {
	return &DashboardHandler{uc: uc, navegacion: navegacion}
}

// GetSummary devuelve las métricas del panel principal.
// GET /api/dashboard
//
// Respuesta: DashboardResponse (total_clientes, trabajos_pendientes, productos_stock_bajo, alerta).
// Siempre 200: una métrica que no se pudo obtener vale 0.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(RequestContext(c)))
}

// Navegacion godoc
// @Summary      Secciones visibles
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NavegacionResponse
// @Router       /api/navegacion [get]
func (h *DashboardHandler) Navegacion(c *fiber.Ctx) error {
	return c.JSON(h.navegacion.Navegacion(entity.TipoPersona(GetRole(c))))
}
