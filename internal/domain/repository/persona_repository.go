package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// PersonaRepository define el puerto para Persona (clientes, empleados, proveedores).
type PersonaRepository interface {
	List(ctx context.Context) ([]entity.Persona, error)
	ListByTipo(ctx context.Context, tipo entity.TipoPersona) ([]entity.Persona, error)
	GetByID(ctx context.Context, id string) (*entity.Persona, error)
	Create(ctx context.Context, p *entity.Persona) (*entity.Persona, error)
	Update(ctx context.Context, id string, p *entity.Persona) (*entity.Persona, error)
	Delete(ctx context.Context, id string) error
}
