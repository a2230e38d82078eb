package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado es la etapa del ciclo de vida de un trabajo.
type Estado string

const (
	EstadoPendiente Estado = "Pendiente"
	EstadoEnProceso Estado = "En Proceso"
	EstadoTerminado Estado = "Terminado"
	EstadoEntregado Estado = "Entregado"
)

// Estados en orden estricto de avance.
var Estados = []Estado{EstadoPendiente, EstadoEnProceso, EstadoTerminado, EstadoEntregado}

// Index devuelve la posición del estado en el ciclo (0..3) o -1 si es desconocido.
func (e Estado) Index() int {
	for i, s := range Estados {
		if s == e {
			return i
		}
	}
	return -1
}

// Valid indica si el estado es uno de los cuatro conocidos.
func (e Estado) Valid() bool { return e.Index() >= 0 }

// TareaLinea es una tarea del trabajo con su precio congelado al momento de agregarla.
type TareaLinea struct {
	Tarea           Ref[Tarea]      `json:"tarea"`
	PrecioAlMomento decimal.Decimal `json:"precio_al_momento"`
}

// ProductoLinea es un producto usado en el trabajo; el precio se lee en vivo desde el producto.
type ProductoLinea struct {
	Producto Ref[Producto] `json:"producto"`
	Cantidad int           `json:"cantidad"`
}

// Trabajo es una orden de trabajo sobre un vehículo.
type Trabajo struct {
	ID              string          `json:"_id,omitempty"`
	Vehiculo        Ref[Vehiculo]   `json:"vehiculo"`
	Estado          Estado          `json:"estado"`
	Tareas          []TareaLinea    `json:"tareas"`
	ProductosUsados []ProductoLinea `json:"productos_usados"`
	Observaciones   string          `json:"observaciones,omitempty"`
	PrecioTotal     decimal.Decimal `json:"precio_total"`
	IsActive        *bool           `json:"isActive,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

func (t Trabajo) EntityID() string { return t.ID }

// Cliente devuelve el dueño del vehículo cuando ambas referencias vienen pobladas.
func (t Trabajo) Cliente() (*Persona, bool) {
	v, ok := t.Vehiculo.Entity()
	if !ok {
		return nil, false
	}
	return v.Cliente.Entity()
}
