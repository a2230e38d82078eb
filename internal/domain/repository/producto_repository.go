package repository

import (
	"context"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// ProductoRepository define el puerto para Producto. SoftDelete archiva; HardDelete elimina.
type ProductoRepository interface {
	List(ctx context.Context) ([]entity.Producto, error)
	ListLowStock(ctx context.Context) ([]entity.Producto, error)
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	Create(ctx context.Context, p *entity.Producto) (*entity.Producto, error)
	Update(ctx context.Context, id string, p *entity.Producto) (*entity.Producto, error)
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}
