package dto

import "github.com/jhoicas/detailing-dashboard/internal/domain/entity"

// PersonaRequest formulario de cliente o proveedor (alta y edición).
type PersonaRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Apellido  string `json:"apellido" validate:"required"`
	DNI       string `json:"dni" validate:"required,dni"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	CUIT      string `json:"cuit" validate:"omitempty,cuit"`
}

// PersonaListResponse listado filtrado de personas.
type PersonaListResponse struct {
	Items []entity.Persona `json:"items"`
	Total int              `json:"total"`
}
