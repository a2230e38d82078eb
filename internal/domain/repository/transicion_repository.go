package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// TransicionRepository es el historial append-only de cambios de estado.
type TransicionRepository interface {
	Append(ctx context.Context, t *entity.Transicion) error
	ListByTrabajo(ctx context.Context, trabajoID string) ([]entity.Transicion, error)
}
