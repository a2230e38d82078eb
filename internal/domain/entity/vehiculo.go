package entity

import "time"

// Vehiculo pertenece a exactamente una Persona de tipo Cliente. La patente es opcional.
type Vehiculo struct {
	ID        string       `json:"_id,omitempty"`
	Cliente   Ref[Persona] `json:"cliente"`
	Marca     string       `json:"marca"`
	Modelo    string       `json:"modelo"`
	Patente   string       `json:"patente,omitempty"`
	IsActive  *bool        `json:"isActive,omitempty"`
	CreatedAt *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt *time.Time   `json:"updatedAt,omitempty"`
}

func (v Vehiculo) EntityID() string { return v.ID }

// Descripcion devuelve "Marca Modelo (PATENTE)" o "Marca Modelo" sin patente.
func (v Vehiculo) Descripcion() string {
	d := v.Marca + " " + v.Modelo
	if v.Patente != "" {
		d += " (" + v.Patente + ")"
	}
	return d
}

// ClienteNombre devuelve el nombre del dueño si la referencia viene poblada.
func (v Vehiculo) ClienteNombre() string {
	if c, ok := v.Cliente.Entity(); ok {
		return c.NombreCompleto()
	}
	return ""
}
