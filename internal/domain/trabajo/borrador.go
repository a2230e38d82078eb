package trabajo

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Catalogo es la foto de clientes, tareas y productos tomada al abrir el formulario.
// El stock de los productos no se vuelve a leer antes de enviar.
type Catalogo struct {
	Clientes  []entity.Persona
	Tareas    []entity.Tarea
	Productos []entity.Producto
}

// Borrador es una orden de trabajo en edición.
type Borrador struct {
	ID            string
	ClienteID     string
	VehiculoID    string
	Observaciones string
	Tareas        []entity.TareaLinea
	Productos     []entity.ProductoLinea
	Catalogo      Catalogo
}

// NuevoBorrador crea un borrador vacío sobre la foto del catálogo.
func NuevoBorrador(id string, cat Catalogo) *Borrador {
	return &Borrador{ID: id, Catalogo: cat}
}

// ElegirCliente cambia el cliente; si cambia, el vehículo elegido deja de valer.
func (b *Borrador) ElegirCliente(clienteID string) {
	if clienteID != b.ClienteID {
		b.VehiculoID = ""
	}
	b.ClienteID = clienteID
}

// AgregarTarea agrega una tarea del catálogo congelando su precio actual. No admite duplicados.
func (b *Borrador) AgregarTarea(tareaID string) error {
	i := slices.IndexFunc(b.Catalogo.Tareas, func(t entity.Tarea) bool { return t.ID == tareaID })
	if i < 0 {
		return fmt.Errorf("tarea %s: %w", tareaID, domain.ErrNotFound)
	}
	if slices.ContainsFunc(b.Tareas, func(l entity.TareaLinea) bool { return l.Tarea.ID() == tareaID }) {
		return fmt.Errorf("la tarea ya está en la orden: %w", domain.ErrDuplicate)
	}
	t := b.Catalogo.Tareas[i]
	b.Tareas = append(b.Tareas, entity.TareaLinea{
		Tarea:           entity.Populated(t),
		PrecioAlMomento: t.Precio,
	})
	return nil
}

// QuitarTarea elimina la línea de la tarea, si existe.
func (b *Borrador) QuitarTarea(tareaID string) {
	b.Tareas = slices.DeleteFunc(b.Tareas, func(l entity.TareaLinea) bool { return l.Tarea.ID() == tareaID })
}

// AgregarProducto agrega un producto con la cantidad pedida. La cantidad se compara contra
// el stock de la foto del catálogo.
func (b *Borrador) AgregarProducto(productoID string, cantidad int) error {
	if cantidad < 1 {
		return domain.NewValidationError("cantidad", "La cantidad debe ser al menos 1")
	}
	i := slices.IndexFunc(b.Catalogo.Productos, func(p entity.Producto) bool { return p.ID == productoID })
	if i < 0 {
		return fmt.Errorf("producto %s: %w", productoID, domain.ErrNotFound)
	}
	if slices.ContainsFunc(b.Productos, func(l entity.ProductoLinea) bool { return l.Producto.ID() == productoID }) {
		return fmt.Errorf("el producto ya está en la orden: %w", domain.ErrDuplicate)
	}
	p := b.Catalogo.Productos[i]
	if cantidad > p.StockActual {
		return &DisponibilidadError{Disponible: p.StockActual}
	}
	b.Productos = append(b.Productos, entity.ProductoLinea{
		Producto: entity.Populated(p),
		Cantidad: cantidad,
	})
	return nil
}

// QuitarProducto elimina la línea del producto, si existe.
func (b *Borrador) QuitarProducto(productoID string) {
	b.Productos = slices.DeleteFunc(b.Productos, func(l entity.ProductoLinea) bool { return l.Producto.ID() == productoID })
}

// Resumen devuelve los subtotales en vivo del borrador.
func (b *Borrador) Resumen() Resumen {
	return Calcular(b.Tareas, b.Productos)
}

// Trabajo valida el borrador y arma el trabajo a enviar, en estado Pendiente y con el total calculado.
// Las líneas llevan sólo los IDs, como los espera la API.
func (b *Borrador) Trabajo() (entity.Trabajo, error) {
	verr := &domain.ValidationError{Fields: map[string]string{}}
	if b.VehiculoID == "" {
		verr.Fields["vehiculo"] = "Debe seleccionar un vehículo"
	}
	if len(b.Tareas) == 0 {
		verr.Fields["tareas"] = "Debe seleccionar al menos una tarea"
	}
	if len(verr.Fields) > 0 {
		return entity.Trabajo{}, verr
	}
	tareas := make([]entity.TareaLinea, len(b.Tareas))
	for i, l := range b.Tareas {
		tareas[i] = entity.TareaLinea{Tarea: l.Tarea.Unpopulated(), PrecioAlMomento: l.PrecioAlMomento}
	}
	productos := make([]entity.ProductoLinea, len(b.Productos))
	for i, l := range b.Productos {
		productos[i] = entity.ProductoLinea{Producto: l.Producto.Unpopulated(), Cantidad: l.Cantidad}
	}
	return entity.Trabajo{
		Vehiculo:        entity.Reference[entity.Vehiculo](b.VehiculoID),
		Estado:          entity.EstadoPendiente,
		Tareas:          tareas,
		ProductosUsados: productos,
		Observaciones:   strings.TrimSpace(b.Observaciones),
		PrecioTotal:     b.Resumen().Total,
	}, nil
}
