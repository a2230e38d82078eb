package store

import (
	"sync"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Container guarda el ListState de un recurso y aplica las acciones de a una.
type Container[T entity.Identifiable] struct {
	mu    sync.RWMutex
	state ListState[T]
}

// NewContainer crea un contenedor vacío.
func NewContainer[T entity.Identifiable](prependOnCreate bool) *Container[T] {
	return &Container[T]{state: ListState[T]{Items: []T{}, PrependOnCreate: prependOnCreate}}
}

// Dispatch aplica las acciones en orden y devuelve el estado resultante.
func (c *Container[T]) Dispatch(actions ...Action) ListState[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range actions {
		c.state = Reduce(c.state, a)
	}
	return c.state
}

// State devuelve una foto del estado actual.
func (c *Container[T]) State() ListState[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}
