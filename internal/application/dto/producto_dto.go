package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// ProductoRequest formulario de producto. StockMinimo ausente toma el valor por defecto (5).
type ProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Proveedor   string          `json:"proveedor" validate:"required"`
	PrecioVenta decimal.Decimal `json:"precio_venta" validate:"gte=0"`
	StockActual int             `json:"stock_actual" validate:"gte=0"`
	StockMinimo *int            `json:"stock_minimo" validate:"omitempty,gte=0"`
}

// ProductoQuery filtros del listado de productos.
type ProductoQuery struct {
	Search    string `query:"search"`
	StockBajo bool   `query:"stock_bajo"`
}

// ProductoListResponse listado filtrado con la cantidad de productos en stock bajo.
type ProductoListResponse struct {
	Items     []entity.Producto `json:"items"`
	Total     int               `json:"total"`
	StockBajo int               `json:"stock_bajo"`
}
