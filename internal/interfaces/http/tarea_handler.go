package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
)

// TareaHandler maneja el catálogo de servicios.
type TareaHandler struct {
	uc *usecase.TareaUseCase
}

// NewTareaHandler construye el handler.
func NewTareaHandler(uc *usecase.TareaUseCase) *TareaHandler {
	return &TareaHandler{uc: uc}
}

// List godoc
// @Summary      Listar tareas
// @Tags         tareas
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Descripción"
// @Success      200     {object}  dto.TareaListResponse
// @Router       /api/tareas [get]
func (h *TareaHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
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
// @Summary      Obtener tarea
// @Tags         tareas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tarea"
// @Success      200  {object}  entity.Tarea
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tareas/{id} [get]
func (h *TareaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(RequestContext(c), GetStore(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tarea
// @Tags         tareas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TareaRequest  true  "Datos de la tarea"
// @Success      201   {object}  entity.Tarea
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tareas [post]
func (h *TareaHandler) Create(c *fiber.Ctx) error {
	var in dto.TareaRequest
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
// @Summary      Actualizar tarea
// @Tags         tareas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.TareaRequest  true  "Datos de la tarea"
// @Success      200   {object}  entity.Tarea
// @Router       /api/tareas/{id} [put]
func (h *TareaHandler) Update(c *fiber.Ctx) error {
	var in dto.TareaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(RequestContext(c), GetStore(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetActivo godoc
// @Summary      Activar o desactivar tarea
// @Tags         tareas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tarea"
// @Param        body  body  dto.TareaActivoRequest  true  "Activo"
// @Success      200   {object}  entity.Tarea
// @Router       /api/tareas/{id}/activo [patch]
func (h *TareaHandler) SetActivo(c *fiber.Ctx) error {
	var in dto.TareaActivoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetActivo(RequestContext(c), GetStore(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea
// @Tags         tareas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la tarea"
// @Success      204
// @Router       /api/tareas/{id} [delete]
func (h *TareaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(RequestContext(c), GetStore(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
