// Package store mantiene el estado de listas por sesión: un reducer puro por recurso
// y contenedores que aplican las acciones de a una.
package store

import (
	"slices"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Filters filtros activos de un listado. Cada recurso usa los que le corresponden.
type Filters struct {
	Search    string `json:"search,omitempty"`
	Estado    string `json:"estado,omitempty"`
	Cliente   string `json:"cliente,omitempty"`
	StockBajo bool   `json:"stock_bajo,omitempty"`
}

// ListState es el estado de un recurso: ítems, selección, carga, error y filtros.
type ListState[T entity.Identifiable] struct {
	Items    []T
	Selected *T
	Loading  bool
	Error    string
	Filters  Filters

	// PrependOnCreate agrega los nuevos ítems al principio (trabajos) en vez de al final.
	PrependOnCreate bool
}

// Action es cualquier acción que entiende Reduce.
type Action interface {
	isAction()
}

type (
	FetchStarted  struct{}
	FetchFailed   struct{ Err string }
	Removed       struct{ ID string }
	FilterChanged struct{ Filters Filters }
	ErrorCleared  struct{}

	FetchSucceeded[T entity.Identifiable] struct{ Items []T }
	Created[T entity.Identifiable]        struct{ Item T }
	Updated[T entity.Identifiable]        struct{ Item T }
	Selected[T entity.Identifiable]       struct{ Item *T }
	// SelectionPatched modifica la copia seleccionada sin tocar la lista.
	SelectionPatched[T entity.Identifiable] struct{ Patch func(*T) }
)

func (FetchStarted) isAction()        {}
func (FetchFailed) isAction()         {}
func (Removed) isAction()             {}
func (FilterChanged) isAction()       {}
func (ErrorCleared) isAction()        {}
func (FetchSucceeded[T]) isAction()   {}
func (Created[T]) isAction()          {}
func (Updated[T]) isAction()          {}
func (Selected[T]) isAction()         {}
func (SelectionPatched[T]) isAction() {}

// Reduce devuelve el nuevo estado sin modificar el recibido.
// Las acciones de otro tipo de ítem se ignoran.
func Reduce[T entity.Identifiable](s ListState[T], a Action) ListState[T] {
	switch a := a.(type) {
	case FetchStarted:
		s.Loading = true
		s.Error = ""
	case FetchSucceeded[T]:
		s.Loading = false
		s.Items = slices.Clone(a.Items)
		if s.Items == nil {
			s.Items = []T{}
		}
	case FetchFailed:
		s.Loading = false
		s.Error = a.Err
	case Created[T]:
		items := make([]T, 0, len(s.Items)+1)
		if s.PrependOnCreate {
			items = append(items, a.Item)
			items = append(items, s.Items...)
		} else {
			items = append(items, s.Items...)
			items = append(items, a.Item)
		}
		s.Items = items
	case Updated[T]:
		id := a.Item.EntityID()
		items := slices.Clone(s.Items)
		for i := range items {
			if items[i].EntityID() == id {
				items[i] = a.Item
			}
		}
		s.Items = items
		if s.Selected != nil && (*s.Selected).EntityID() == id {
			item := a.Item
			s.Selected = &item
		}
	case Removed:
		s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(it T) bool { return it.EntityID() == a.ID })
		if s.Selected != nil && (*s.Selected).EntityID() == a.ID {
			s.Selected = nil
		}
	case Selected[T]:
		if a.Item == nil {
			s.Selected = nil
			break
		}
		item := *a.Item
		s.Selected = &item
	case SelectionPatched[T]:
		if s.Selected == nil || a.Patch == nil {
			break
		}
		item := *s.Selected
		a.Patch(&item)
		s.Selected = &item
	case FilterChanged:
		s.Filters = a.Filters
	case ErrorCleared:
		s.Error = ""
	}
	return s
}
