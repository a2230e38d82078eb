package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/trabajo"
)

// BorradorTarea línea de tarea del formulario.
type BorradorTarea struct {
	TareaID         string          `json:"tarea"`
	Descripcion     string          `json:"descripcion"`
	PrecioAlMomento decimal.Decimal `json:"precio_al_momento"`
}

// BorradorProducto línea de producto del formulario.
type BorradorProducto struct {
	ProductoID  string          `json:"producto"`
	Nombre      string          `json:"nombre"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	StockActual int             `json:"stock_actual"`
	Cantidad    int             `json:"cantidad"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CatalogoResponse opciones de los selects del formulario.
type CatalogoResponse struct {
	Clientes  []entity.Persona  `json:"clientes"`
	Tareas    []entity.Tarea    `json:"tareas"`
	Productos []entity.Producto `json:"productos"`
}

// BorradorResponse estado completo del formulario de alta de trabajo.
type BorradorResponse struct {
	ID            string             `json:"id"`
	Cliente       string             `json:"cliente,omitempty"`
	Vehiculo      string             `json:"vehiculo,omitempty"`
	Observaciones string             `json:"observaciones"`
	Tareas        []BorradorTarea    `json:"tareas"`
	Productos     []BorradorProducto `json:"productos_usados"`
	Resumen       trabajo.Resumen    `json:"resumen"`
	Catalogo      CatalogoResponse   `json:"catalogo"`
}

// BorradorUpdateRequest cambia cliente, vehículo u observaciones; los campos nulos no se tocan.
type BorradorUpdateRequest struct {
	Cliente       *string `json:"cliente"`
	Vehiculo      *string `json:"vehiculo"`
	Observaciones *string `json:"observaciones"`
}

// BorradorTareaRequest agrega una tarea del catálogo.
type BorradorTareaRequest struct {
	Tarea string `json:"tarea" validate:"required"`
}

// BorradorProductoRequest agrega un producto del catálogo.
type BorradorProductoRequest struct {
	Producto string `json:"producto" validate:"required"`
	Cantidad int    `json:"cantidad" validate:"gte=1"`
}
