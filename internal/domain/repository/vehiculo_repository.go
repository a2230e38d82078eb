package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// VehiculoRepository define el puerto para Vehiculo.
type VehiculoRepository interface {
	List(ctx context.Context) ([]entity.Vehiculo, error)
	GetByID(ctx context.Context, id string) (*entity.Vehiculo, error)
	Create(ctx context.Context, v *entity.Vehiculo) (*entity.Vehiculo, error)
	Update(ctx context.Context, id string, v *entity.Vehiculo) (*entity.Vehiculo, error)
	Delete(ctx context.Context, id string) error
}
