// Package usecase contiene los casos de uso por recurso del dashboard. Cada operación
// valida antes de llamar a la API y actualiza el Store de la sesión sólo cuando el
// servidor confirma.
package usecase

import (
	"context"
	"slices"

	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// load recarga el contenedor con fetch. Si falla, el error queda en el estado y los ítems
// anteriores se conservan.
func load[T entity.Identifiable](ctx context.Context, c *store.Container[T], fetch func(context.Context) ([]T, error)) (store.ListState[T], error) {
	c.Dispatch(store.FetchStarted{})
	items, err := fetch(ctx)
	if err != nil {
		return c.Dispatch(store.FetchFailed{Err: err.Error()}), err
	}
	return c.Dispatch(store.FetchSucceeded[T]{Items: items}), nil
}

// fail deja el error de una mutación en el estado del contenedor y lo devuelve.
func fail[T entity.Identifiable](c *store.Container[T], err error) error {
	c.Dispatch(store.FetchFailed{Err: err.Error()})
	return err
}

// filter devuelve los ítems que cumplen keep, nunca nil.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return slices.Clip(out)
}
