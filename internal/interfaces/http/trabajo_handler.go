package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
)

// TrabajoHandler maneja las órdenes de trabajo y su ciclo de vida.
type TrabajoHandler struct {
	uc *usecase.TrabajoUseCase
}

// NewTrabajoHandler construye el handler.
func NewTrabajoHandler(uc *usecase.TrabajoUseCase) *TrabajoHandler {
	return &TrabajoHandler{uc: uc}
}

// List godoc
// @Summary      Listar trabajos
// @Tags         trabajos
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Pendiente | En Proceso | Terminado | Entregado"
// @Param        search  query  string  false  "Vehículo o cliente"
// @Success      200     {object}  dto.TrabajoListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/trabajos [get]
func (h *TrabajoHandler) List(c *fiber.Ctx) error {
	var q dto.TrabajoQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(RequestContext(c), GetStore(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de trabajo
// @Tags         trabajos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del trabajo"
// @Success      200  {object}  dto.TrabajoDetalleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajos/{id} [get]
func (h *TrabajoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Detail(RequestContext(c), GetStore(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear trabajo
// @Tags         trabajos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrabajoRequest  true  "Datos del trabajo"
// @Success      201   {object}  entity.Trabajo
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trabajos [post]
func (h *TrabajoHandler) Create(c *fiber.Ctx) error {
	var in dto.TrabajoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(RequestContext(c), GetStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar trabajo
// @Description  No cambia el estado; para eso está POST /api/trabajos/{id}/estado.
// @Tags         trabajos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trabajo"
// @Param        body  body  dto.TrabajoRequest  true  "Datos del trabajo"
// @Success      200   {object}  entity.Trabajo
// @Router       /api/trabajos/{id} [patch]
func (h *TrabajoHandler) Update(c *fiber.Ctx) error {
	var in dto.TrabajoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(RequestContext(c), GetStore(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar trabajo (baja lógica)
// @Tags         trabajos
// @Security     Bearer
// @Param        id   path  string  true  "ID del trabajo"
// @Success      204
// @Router       /api/trabajos/{id}/archivar [patch]
func (h *TrabajoHandler) Archive(c *fiber.Ctx) error {
	if err := h.uc.Archive(RequestContext(c), GetStore(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar trabajo
// @Tags         trabajos
// @Security     Bearer
// @Param        id   path  string  true  "ID del trabajo"
// @Success      204
// @Router       /api/trabajos/{id} [delete]
func (h *TrabajoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(RequestContext(c), GetStore(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SolicitarCambioEstado godoc
// @Summary      Pedir cambio de estado
// @Description  Valida la transición (sin retrocesos, stock al terminar) y devuelve una
// @Description  confirmación pendiente. No modifica el trabajo.
// @Tags         trabajos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trabajo"
// @Param        body  body  dto.CambioEstadoRequest  true  "Estado destino"
// @Success      200   {object}  dto.CambioEstadoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/trabajos/{id}/estado [post]
func (h *TrabajoHandler) SolicitarCambioEstado(c *fiber.Ctx) error {
	var in dto.CambioEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SolicitarCambioEstado(RequestContext(c), GetStore(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Confirmar godoc
// @Summary      Confirmar cambio de estado
// @Tags         trabajos
// @Security     Bearer
// @Produce      json
// @Param        cid  path  string  true  "ID de la confirmación"
// @Success      200  {object}  entity.Trabajo
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajos/confirmaciones/{cid} [post]
func (h *TrabajoHandler) Confirmar(c *fiber.Ctx) error {
	out, err := h.uc.Confirmar(RequestContext(c), GetStore(c), GetPersonaID(c), c.Params("cid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancelar godoc
// @Summary      Cancelar cambio de estado
// @Tags         trabajos
// @Security     Bearer
// @Param        cid  path  string  true  "ID de la confirmación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajos/confirmaciones/{cid} [delete]
func (h *TrabajoHandler) Cancelar(c *fiber.Ctx) error {
	if err := h.uc.Cancelar(GetStore(c), c.Params("cid")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Historial godoc
// @Summary      Historial de estados
// @Tags         trabajos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del trabajo"
// @Success      200  {array}  entity.Transicion
// @Router       /api/trabajos/{id}/historial [get]
func (h *TrabajoHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(RequestContext(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Orden de trabajo en PDF
// @Tags         trabajos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del trabajo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trabajos/{id}/pdf [get]
func (h *TrabajoHandler) PDF(c *fiber.Ctx) error {
	data, ref, err := h.uc.PDF(RequestContext(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+pdfFilename(ref)+`"`)
	return c.Send(data)
}

// pdfFilename "Orden #0000BEEF" → "orden-0000BEEF.pdf".
func pdfFilename(ref string) string {
	out := make([]rune, 0, len(ref))
	for _, r := range ref {
		switch {
		case r == ' ':
			out = append(out, '-')
		case r == '#':
		default:
			out = append(out, r)
		}
	}
	if len(out) > 0 && out[0] == 'O' {
		out[0] = 'o'
	}
	return string(out) + ".pdf"
}
