package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
)

// BorradorHandler maneja el formulario de alta de trabajo (un borrador por sesión).
type BorradorHandler struct {
	uc *usecase.BorradorUseCase
}

// NewBorradorHandler construye el handler.
func NewBorradorHandler(uc *usecase.BorradorUseCase) *BorradorHandler {
	return &BorradorHandler{uc: uc}
}

// Iniciar godoc
// @Summary      Abrir formulario de trabajo
// @Description  Carga clientes, tareas activas y productos y crea un borrador vacío.
// @Tags         borrador
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.BorradorResponse
// @Router       /api/trabajos/borrador [post]
func (h *BorradorHandler) Iniciar(c *fiber.Ctx) error {
	out, err := h.uc.Iniciar(RequestContext(c), GetStore(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Obtener godoc
// @Summary      Borrador actual
// @Tags         borrador
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BorradorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/trabajos/borrador [get]
func (h *BorradorHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(GetStore(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Cambiar cliente, vehículo u observaciones
// @Tags         borrador
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BorradorUpdateRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.BorradorResponse
// @Router       /api/trabajos/borrador [put]
func (h *BorradorHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.BorradorUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Actualizar(RequestContext(c), GetStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Vehiculos godoc
// @Summary      Vehículos del cliente elegido
// @Tags         borrador
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Vehiculo
// @Router       /api/trabajos/borrador/vehiculos [get]
func (h *BorradorHandler) Vehiculos(c *fiber.Ctx) error {
	out, err := h.uc.Vehiculos(RequestContext(c), GetStore(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AgregarTarea godoc
// @Summary      Agregar tarea
// @Tags         borrador
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BorradorTareaRequest  true  "Tarea"
// @Success      200   {object}  dto.BorradorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trabajos/borrador/tareas [post]
func (h *BorradorHandler) AgregarTarea(c *fiber.Ctx) error {
	var in dto.BorradorTareaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AgregarTarea(GetStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuitarTarea godoc
// @Summary      Quitar tarea
// @Tags         borrador
// @Security     Bearer
// @Produce      json
// @Param        tareaId  path  string  true  "ID de la tarea"
// @Success      200      {object}  dto.BorradorResponse
// @Router       /api/trabajos/borrador/tareas/{tareaId} [delete]
func (h *BorradorHandler) QuitarTarea(c *fiber.Ctx) error {
	out, err := h.uc.QuitarTarea(GetStore(c), c.Params("tareaId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AgregarProducto godoc
// @Summary      Agregar producto
// @Tags         borrador
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BorradorProductoRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.BorradorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/trabajos/borrador/productos [post]
func (h *BorradorHandler) AgregarProducto(c *fiber.Ctx) error {
	var in dto.BorradorProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AgregarProducto(GetStore(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// QuitarProducto godoc
// @Summary      Quitar producto
// @Tags         borrador
// @Security     Bearer
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200         {object}  dto.BorradorResponse
// @Router       /api/trabajos/borrador/productos/{productoId} [delete]
func (h *BorradorHandler) QuitarProducto(c *fiber.Ctx) error {
	out, err := h.uc.QuitarProducto(GetStore(c), c.Params("productoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Enviar godoc
// @Summary      Crear el trabajo del borrador
// @Tags         borrador
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  entity.Trabajo
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/trabajos/borrador/enviar [post]
func (h *BorradorHandler) Enviar(c *fiber.Ctx) error {
	out, err := h.uc.Enviar(RequestContext(c), GetStore(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Descartar godoc
// @Summary      Descartar borrador
// @Tags         borrador
// @Security     Bearer
// @Success      204
// @Router       /api/trabajos/borrador [delete]
func (h *BorradorHandler) Descartar(c *fiber.Ctx) error {
	h.uc.Descartar(GetStore(c))
	return c.SendStatus(fiber.StatusNoContent)
}
