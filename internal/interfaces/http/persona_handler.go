package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// personaTipoService lo implementan *usecase.ClienteUseCase y *usecase.ProveedorUseCase.
type personaTipoService interface {
	List(ctx context.Context, st *store.Store, q dto.ListQuery) (*dto.PersonaListResponse, error)
	Get(ctx context.Context, st *store.Store, id string) (*entity.Persona, error)
	Create(ctx context.Context, st *store.Store, in dto.PersonaRequest) (*entity.Persona, error)
	Update(ctx context.Context, st *store.Store, id string, in dto.PersonaRequest) (*entity.Persona, error)
	Delete(ctx context.Context, st *store.Store, id string) error
}

// PersonaTipoHandler CRUD de clientes o proveedores, según el caso de uso recibido.
type PersonaTipoHandler struct {
	uc personaTipoService
}

// NewClienteHandler handler de /api/clientes.
func NewClienteHandler(uc *usecase.ClienteUseCase) *PersonaTipoHandler {
	return &PersonaTipoHandler{uc: uc}
}

// NewProveedorHandler handler de /api/proveedores.
func NewProveedorHandler(uc *usecase.ProveedorUseCase) *PersonaTipoHandler {
	return &PersonaTipoHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes o proveedores
// @Tags         personas
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre, apellido, DNI o email"
// @Success      200     {object}  dto.PersonaListResponse
// @Router       /api/clientes [get]
// @Router       /api/proveedores [get]
func (h *PersonaTipoHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener cliente o proveedor
// @Tags         personas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la persona"
// @Success      200  {object}  entity.Persona
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
// @Router       /api/proveedores/{id} [get]
func (h *PersonaTipoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(RequestContext(c), GetStore(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente o proveedor
// @Tags         personas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PersonaRequest  true  "Datos de la persona"
// @Success      201   {object}  entity.Persona
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
// @Router       /api/proveedores [post]
func (h *PersonaTipoHandler) Create(c *fiber.Ctx) error {
	var in dto.PersonaRequest
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
// @Summary      Actualizar cliente o proveedor
// @Tags         personas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la persona"
// @Param        body  body  dto.PersonaRequest  true  "Datos de la persona"
// @Success      200   {object}  entity.Persona
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
// @Router       /api/proveedores/{id} [put]
func (h *PersonaTipoHandler) Update(c *fiber.Ctx) error {
	var in dto.PersonaRequest
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
// @Summary      Eliminar cliente o proveedor
// @Tags         personas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la persona"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
// @Router       /api/proveedores/{id} [delete]
func (h *PersonaTipoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(RequestContext(c), GetStore(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PersonaHandler consultas de administración sobre todas las personas.
type PersonaHandler struct {
	uc *usecase.PersonaUseCase
}

// NewPersonaHandler construye el handler.
func NewPersonaHandler(uc *usecase.PersonaUseCase) *PersonaHandler {
	return &PersonaHandler{uc: uc}
}

// List godoc
// @Summary      Listar todas las personas
// @Tags         personas
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre, apellido, DNI o email"
// @Success      200     {object}  dto.PersonaListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/personas [get]
func (h *PersonaHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.List(RequestContext(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByTipo godoc
// @Summary      Listar personas por tipo
// @Tags         personas
// @Security     Bearer
// @Produce      json
// @Param        tipo  path  string  true  "Administrador | Empleado | Cliente | Proveedor"
// @Success      200   {object}  dto.PersonaListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/personas/tipo/{tipo} [get]
func (h *PersonaHandler) ListByTipo(c *fiber.Ctx) error {
	out, err := h.uc.ListByTipo(RequestContext(c), c.Params("tipo"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
