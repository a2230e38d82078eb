package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/trabajo"
)

// TrabajoTareaInput tarea con su precio al momento.
type TrabajoTareaInput struct {
	Tarea           string          `json:"tarea" validate:"required"`
	PrecioAlMomento decimal.Decimal `json:"precio_al_momento" validate:"gte=0"`
}

// TrabajoProductoInput producto usado y su cantidad.
type TrabajoProductoInput struct {
	Producto string `json:"producto" validate:"required"`
	Cantidad int    `json:"cantidad" validate:"gte=1"`
}

// TrabajoRequest alta o edición directa de una orden (sin pasar por el borrador).
// El estado no se edita acá: sólo por el ciclo de vida.
type TrabajoRequest struct {
	Vehiculo        string                 `json:"vehiculo" validate:"required"`
	Tareas          []TrabajoTareaInput    `json:"tareas" validate:"required,min=1,dive"`
	ProductosUsados []TrabajoProductoInput `json:"productos_usados" validate:"dive"`
	Observaciones   string                 `json:"observaciones"`
}

// TrabajoQuery filtros del listado de trabajos.
type TrabajoQuery struct {
	Estado string `query:"estado"`
	Search string `query:"search"`
}

// TrabajoListResponse listado con conteo por estado.
type TrabajoListResponse struct {
	Items     []entity.Trabajo `json:"items"`
	Total     int              `json:"total"`
	PorEstado map[string]int   `json:"por_estado"`
}

// TrabajoDetalleResponse orden con subtotales y el próximo estado sugerido.
type TrabajoDetalleResponse struct {
	Trabajo    entity.Trabajo  `json:"trabajo"`
	Referencia string          `json:"referencia"`
	Resumen    trabajo.Resumen `json:"resumen"`
	Siguiente  string          `json:"siguiente_estado,omitempty"`
}

// CambioEstadoRequest pedido de cambio de estado (todavía sin confirmar).
type CambioEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=Pendiente 'En Proceso' Terminado Entregado"`
}

// ConfirmacionResponse confirmación pendiente que el usuario debe aceptar o cancelar.
type ConfirmacionResponse struct {
	ID        string        `json:"id"`
	TrabajoID string        `json:"trabajo_id"`
	Desde     entity.Estado `json:"desde"`
	Hacia     entity.Estado `json:"hacia"`
	Mensaje   string        `json:"mensaje"`
	ExpiraEn  time.Time     `json:"expira_en"`
}

// CambioEstadoResponse resultado de un pedido de cambio de estado. Si Cambio es false
// el trabajo ya estaba en ese estado y no hay nada que confirmar.
type CambioEstadoResponse struct {
	Cambio       bool                  `json:"cambio"`
	Confirmacion *ConfirmacionResponse `json:"confirmacion,omitempty"`
}
