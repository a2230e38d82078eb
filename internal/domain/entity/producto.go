package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMinimoPorDefecto se aplica cuando el formulario no informa stock mínimo.
const StockMinimoPorDefecto = 5

// Producto es un ítem de inventario provisto por una Persona de tipo Proveedor.
type Producto struct {
	ID          string          `json:"_id,omitempty"`
	Nombre      string          `json:"nombre"`
	Proveedor   Ref[Persona]    `json:"proveedor"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	StockActual int             `json:"stock_actual"`
	StockMinimo int             `json:"stock_minimo"`
	IsActive    *bool           `json:"isActive,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

func (p Producto) EntityID() string { return p.ID }

// StockBajo se evalúa sólo al mostrar; no impide stock negativo.
func (p Producto) StockBajo() bool {
	return p.StockActual < p.StockMinimo
}
