package entity

import (
	"strings"
	"time"
)

// TipoPersona es el rol de una Persona; determina qué secciones del dashboard ve.
type TipoPersona string

const (
	TipoAdministrador TipoPersona = "Administrador"
	TipoEmpleado      TipoPersona = "Empleado"
	TipoCliente       TipoPersona = "Cliente"
	TipoProveedor     TipoPersona = "Proveedor"
)

// Valid indica si el tipo es uno de los cuatro roles conocidos.
func (t TipoPersona) Valid() bool {
	switch t {
	case TipoAdministrador, TipoEmpleado, TipoCliente, TipoProveedor:
		return true
	}
	return false
}

// Persona es la identidad base; Cliente, Empleado, Administrador y Proveedor son especializaciones por Tipo.
type Persona struct {
	ID          string      `json:"_id,omitempty"`
	Nombre      string      `json:"nombre"`
	Apellido    string      `json:"apellido"`
	DNI         string      `json:"dni"`
	Email       string      `json:"email"`
	Telefono    string      `json:"telefono,omitempty"`
	Direccion   string      `json:"direccion,omitempty"`
	CUIT        string      `json:"cuit,omitempty"`
	Tipo        TipoPersona `json:"tipo"`
	FirebaseUID string      `json:"firebaseUid,omitempty"`
	IsActive    *bool       `json:"isActive,omitempty"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

func (p Persona) EntityID() string { return p.ID }

// NombreCompleto devuelve "Nombre Apellido".
func (p Persona) NombreCompleto() string {
	return strings.TrimSpace(p.Nombre + " " + p.Apellido)
}
