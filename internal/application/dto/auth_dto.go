package dto

import (
	"time"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// LoginRequest credenciales del formulario de ingreso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterRequest alta de usuario desde el formulario de registro.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Nombre    string `json:"nombre" validate:"required,min=2"`
	Apellido  string `json:"apellido" validate:"required,min=2"`
	DNI       string `json:"dni" validate:"required,dni"`
	Telefono  string `json:"telefono" validate:"omitempty,telefono"`
	Direccion string `json:"direccion"`
	CUIT      string `json:"cuit" validate:"omitempty,cuit"`
	Tipo      string `json:"tipo" validate:"omitempty,oneof=Cliente Empleado Administrador Proveedor"`
}

// LoginResponse token de sesión del dashboard y el usuario logueado.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      entity.Persona `json:"user"`
}

// LogoutResponse indica a dónde debe recargar la UI.
type LogoutResponse struct {
	Redirect string `json:"redirect"`
}
