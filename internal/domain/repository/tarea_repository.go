package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// TareaRepository define el puerto para el catálogo de tareas.
type TareaRepository interface {
	List(ctx context.Context) ([]entity.Tarea, error)
	GetByID(ctx context.Context, id string) (*entity.Tarea, error)
	Create(ctx context.Context, t *entity.Tarea) (*entity.Tarea, error)
	Update(ctx context.Context, id string, t *entity.Tarea) (*entity.Tarea, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.Tarea, error)
	Delete(ctx context.Context, id string) error
}
