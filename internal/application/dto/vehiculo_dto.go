package dto

import "github.com/jhoicas/detailing-dashboard/internal/domain/entity"

// VehiculoRequest formulario de vehículo. La patente se normaliza a mayúsculas antes de validar.
type VehiculoRequest struct {
	Cliente string `json:"cliente" validate:"required"`
	Marca   string `json:"marca" validate:"required"`
	Modelo  string `json:"modelo" validate:"required"`
	Patente string `json:"patente" validate:"omitempty,patente"`
}

// VehiculoQuery filtros del listado de vehículos.
type VehiculoQuery struct {
	Search  string `query:"search"`
	Cliente string `query:"cliente"`
}

// VehiculoListResponse listado filtrado de vehículos.
type VehiculoListResponse struct {
	Items []entity.Vehiculo `json:"items"`
	Total int               `json:"total"`
}
