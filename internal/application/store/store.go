package store

import (
	"sync"
	"time"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/trabajo"
)

// ConfirmacionTTL vigencia de un cambio de estado pendiente de confirmar.
const ConfirmacionTTL = 5 * time.Minute

// Confirmacion es un cambio de estado validado que espera que el usuario lo acepte.
type Confirmacion struct {
	ID        string
	TrabajoID string
	Desde     entity.Estado
	Hacia     entity.Estado
	Mensaje   string
	ExpiresAt time.Time
}

// Store es el estado de una sesión: listados por recurso, el borrador de trabajo
// y las confirmaciones pendientes.
type Store struct {
	Clientes    *Container[entity.Persona]
	Proveedores *Container[entity.Persona]
	Vehiculos   *Container[entity.Vehiculo]
	Productos   *Container[entity.Producto]
	Tareas      *Container[entity.Tarea]
	Trabajos    *Container[entity.Trabajo]

	mu             sync.Mutex
	borrador       *trabajo.Borrador
	confirmaciones map[string]Confirmacion
	now            func() time.Time
}

// New crea el estado vacío de una sesión.
func New() *Store {
	return &Store{
		Clientes:       NewContainer[entity.Persona](false),
		Proveedores:    NewContainer[entity.Persona](false),
		Vehiculos:      NewContainer[entity.Vehiculo](false),
		Productos:      NewContainer[entity.Producto](false),
		Tareas:         NewContainer[entity.Tarea](false),
		Trabajos:       NewContainer[entity.Trabajo](true),
		confirmaciones: make(map[string]Confirmacion),
		now:            time.Now,
	}
}

// PutConfirmacion registra una confirmación pendiente y le fija el vencimiento.
func (s *Store) PutConfirmacion(c Confirmacion) Confirmacion {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	c.ExpiresAt = s.now().Add(ConfirmacionTTL)
	s.confirmaciones[c.ID] = c
	return c
}

// TakeConfirmacion retira la confirmación; sólo se puede usar una vez.
func (s *Store) TakeConfirmacion(id string) (Confirmacion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	c, ok := s.confirmaciones[id]
	if !ok {
		return Confirmacion{}, domain.ErrConfirmacionNoEncontrada
	}
	delete(s.confirmaciones, id)
	return c, nil
}

func (s *Store) purgeLocked() {
	now := s.now()
	for id, c := range s.confirmaciones {
		if now.After(c.ExpiresAt) {
			delete(s.confirmaciones, id)
		}
	}
}

// SetBorrador reemplaza el borrador en edición.
func (s *Store) SetBorrador(b *trabajo.Borrador) {
	s.mu.Lock()
	s.borrador = b
	s.mu.Unlock()
}

// ClearBorrador descarta el borrador.
func (s *Store) ClearBorrador() {
	s.SetBorrador(nil)
}

// WithBorrador ejecuta fn sobre el borrador con el lock tomado.
func (s *Store) WithBorrador(fn func(b *trabajo.Borrador) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.borrador == nil {
		return domain.ErrBorradorNoIniciado
	}
	return fn(s.borrador)
}
