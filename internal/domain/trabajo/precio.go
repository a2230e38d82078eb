package trabajo

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Resumen son los subtotales de un trabajo.
type Resumen struct {
	SubtotalTareas    decimal.Decimal `json:"subtotal_tareas"`
	SubtotalProductos decimal.Decimal `json:"subtotal_productos"`
	Total             decimal.Decimal `json:"total"`
}

// SubtotalTareas suma los precios congelados al agregar cada tarea.
func SubtotalTareas(tareas []entity.TareaLinea) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range tareas {
		sum = sum.Add(t.PrecioAlMomento)
	}
	return sum
}

// SubtotalLinea es precio_venta x cantidad con el precio vigente del producto.
// Un producto no poblado cuenta como precio 0.
func SubtotalLinea(l entity.ProductoLinea) decimal.Decimal {
	p, ok := l.Producto.Entity()
	if !ok {
		return decimal.Zero
	}
	return p.PrecioVenta.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}

// SubtotalProductos suma SubtotalLinea de cada producto usado.
func SubtotalProductos(productos []entity.ProductoLinea) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range productos {
		sum = sum.Add(SubtotalLinea(l))
	}
	return sum
}

// Calcular arma el resumen de precios de tareas y productos.
func Calcular(tareas []entity.TareaLinea, productos []entity.ProductoLinea) Resumen {
	st := SubtotalTareas(tareas)
	sp := SubtotalProductos(productos)
	return Resumen{SubtotalTareas: st, SubtotalProductos: sp, Total: st.Add(sp)}
}
