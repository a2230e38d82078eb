package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// TareaRequest formulario de servicio del catálogo.
type TareaRequest struct {
	Descripcion    string          `json:"descripcion" validate:"required"`
	Precio         decimal.Decimal `json:"precio" validate:"gte=0.01"`
	TiempoEstimado int             `json:"tiempo_estimado" validate:"gte=1"`
}

// TareaActivoRequest activa o desactiva una tarea.
type TareaActivoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

// TareaListResponse listado filtrado de tareas.
type TareaListResponse struct {
	Items []entity.Tarea `json:"items"`
	Total int            `json:"total"`
}
