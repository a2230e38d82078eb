package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transicion registra un cambio de estado confirmado y aplicado en la API.
type Transicion struct {
	ID          string          `json:"id"`
	TrabajoID   string          `json:"trabajo_id"`
	PersonaID   string          `json:"persona_id"`
	Desde       Estado          `json:"desde"`
	Hacia       Estado          `json:"hacia"`
	PrecioTotal decimal.Decimal `json:"precio_total"`
	CreatedAt   time.Time       `json:"created_at"`
}
