package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tarea es un servicio del catálogo (lavado, pulido, etc.).
type Tarea struct {
	ID             string          `json:"_id,omitempty"`
	Descripcion    string          `json:"descripcion"`
	Precio         decimal.Decimal `json:"precio"`
	TiempoEstimado int             `json:"tiempo_estimado"` // minutos
	IsActive       *bool           `json:"isActive,omitempty"`
	CreatedAt      *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time      `json:"updatedAt,omitempty"`
}

func (t Tarea) EntityID() string { return t.ID }

// Activa trata la ausencia del flag como activa.
func (t Tarea) Activa() bool {
	return t.IsActive == nil || *t.IsActive
}
