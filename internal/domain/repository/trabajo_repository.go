package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// TrabajoRepository define el puerto para órdenes de trabajo.
// UpdateEstado envía sólo el campo estado.
type TrabajoRepository interface {
	List(ctx context.Context) ([]entity.Trabajo, error)
	ListByEstado(ctx context.Context, estado entity.Estado) ([]entity.Trabajo, error)
	GetByID(ctx context.Context, id string) (*entity.Trabajo, error)
	Create(ctx context.Context, t *entity.Trabajo) (*entity.Trabajo, error)
	Update(ctx context.Context, id string, t *entity.Trabajo) (*entity.Trabajo, error)
	UpdateEstado(ctx context.Context, id string, estado entity.Estado) (*entity.Trabajo, error)
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}
