package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
)

// VehiculoHandler maneja las peticiones HTTP para Vehiculo.
type VehiculoHandler struct {
	uc *usecase.VehiculoUseCase
}

// NewVehiculoHandler construye el handler.
func NewVehiculoHandler(uc *usecase.VehiculoUseCase) *VehiculoHandler {
	return &VehiculoHandler{uc: uc}
}

// List godoc
// @Summary      Listar vehículos
// @Tags         vehiculos
// @Security     Bearer
// @Produce      json
// @Param        search   query  string  false  "Patente, marca, modelo o dueño"
// @Param        cliente  query  string  false  "ID del cliente"
// @Success      200      {object}  dto.VehiculoListResponse
// @Router       /api/vehiculos [get]
func (h *VehiculoHandler) List(c *fiber.Ctx) error {
	var q dto.VehiculoQuery
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
// @Summary      Obtener vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  entity.Vehiculo
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehiculos/{id} [get]
func (h *VehiculoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(RequestContext(c), GetStore(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VehiculoRequest  true  "Datos del vehículo"
// @Success      201   {object}  entity.Vehiculo
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vehiculos [post]
func (h *VehiculoHandler) Create(c *fiber.Ctx) error {
	var in dto.VehiculoRequest
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
// @Summary      Actualizar vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del vehículo"
// @Param        body  body  dto.VehiculoRequest  true  "Datos del vehículo"
// @Success      200   {object}  entity.Vehiculo
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vehiculos/{id} [patch]
func (h *VehiculoHandler) Update(c *fiber.Ctx) error {
	var in dto.VehiculoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(RequestContext(c), GetStore(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vehículo
// @Tags         vehiculos
// @Security     Bearer
// @Param        id   path  string  true  "ID del vehículo"
// @Success      204
// @Router       /api/vehiculos/{id} [delete]
func (h *VehiculoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(RequestContext(c), GetStore(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
