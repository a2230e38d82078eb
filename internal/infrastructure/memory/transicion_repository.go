package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.TransicionRepository = (*TransicionRepository)(nil)

// TransicionRepository historial de estados en memoria.
type TransicionRepository struct {
	mu   sync.RWMutex
	byID map[string]struct{}
	list map[string][]entity.Transicion
}

// NewTransicionRepository crea el historial vacío.
func NewTransicionRepository() *TransicionRepository {
	return &TransicionRepository{
		byID: make(map[string]struct{}),
		list: make(map[string][]entity.Transicion),
	}
}

func (r *TransicionRepository) Append(_ context.Context, t *entity.Transicion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[t.ID]; dup {
		return domain.ErrDuplicate
	}
	r.byID[t.ID] = struct{}{}
	r.list[t.TrabajoID] = append(r.list[t.TrabajoID], *t)
	return nil
}

func (r *TransicionRepository) ListByTrabajo(_ context.Context, trabajoID string) ([]entity.Transicion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.list[trabajoID])
	if out == nil {
		out = []entity.Transicion{}
	}
	return out, nil
}
