package trabajo

import (
	"fmt"
	"strings"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Faltante describe una línea de producto sin stock suficiente.
type Faltante struct {
	ProductoID string `json:"producto_id"`
	Nombre     string `json:"nombre"`
	Disponible int    `json:"disponible"`
	Requerido  int    `json:"requerido"`
}

func (f Faltante) String() string {
	return fmt.Sprintf("%s: Disponible %d, Requerido %d", f.Nombre, f.Disponible, f.Requerido)
}

// StockError bloquea el paso a Terminado y lista todas las líneas con problemas, en orden.
type StockError struct {
	Faltantes []Faltante
}

func (e *StockError) Error() string {
	lineas := make([]string, len(e.Faltantes))
	for i, f := range e.Faltantes {
		lineas[i] = f.String()
	}
	return "No se puede finalizar el trabajo. Stock insuficiente:\n\n" + strings.Join(lineas, "\n")
}

func (e *StockError) Unwrap() error { return domain.ErrInsufficientStock }

// Detalles devuelve las líneas en formato texto.
func (e *StockError) Detalles() []string {
	out := make([]string, len(e.Faltantes))
	for i, f := range e.Faltantes {
		out[i] = f.String()
	}
	return out
}

// VerificarStock comprueba stock_actual >= cantidad para cada línea con producto poblado.
// Las líneas sin producto poblado se ignoran: quien llama debe resolverlas antes.
func VerificarStock(lineas []entity.ProductoLinea) error {
	var faltantes []Faltante
	for _, l := range lineas {
		p, ok := l.Producto.Entity()
		if !ok {
			continue
		}
		if p.StockActual < l.Cantidad {
			faltantes = append(faltantes, Faltante{
				ProductoID: p.ID,
				Nombre:     p.Nombre,
				Disponible: p.StockActual,
				Requerido:  l.Cantidad,
			})
		}
	}
	if len(faltantes) > 0 {
		return &StockError{Faltantes: faltantes}
	}
	return nil
}

// DisponibilidadError rechaza agregar un producto cuya cantidad supera el stock conocido.
type DisponibilidadError struct {
	Disponible int
}

func (e *DisponibilidadError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Disponible: %d", e.Disponible)
}

func (e *DisponibilidadError) Unwrap() error { return domain.ErrInsufficientStock }
