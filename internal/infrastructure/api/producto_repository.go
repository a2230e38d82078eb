package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepository)(nil)

// ProductoRepository implementa repository.ProductoRepository sobre /producto.
type ProductoRepository struct {
	c *Client
}

// NewProductoRepository construye el repositorio.
func NewProductoRepository(c *Client) *ProductoRepository {
	return &ProductoRepository{c: c}
}

func (r *ProductoRepository) List(ctx context.Context) ([]entity.Producto, error) {
	return getList[entity.Producto](ctx, r.c, "/producto")
}

func (r *ProductoRepository) ListLowStock(ctx context.Context) ([]entity.Producto, error) {
	return getList[entity.Producto](ctx, r.c, "/producto/low-stock")
}

func (r *ProductoRepository) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	return sendOne[entity.Producto](ctx, r.c, http.MethodGet, "/producto/"+url.PathEscape(id), nil)
}

func (r *ProductoRepository) Create(ctx context.Context, p *entity.Producto) (*entity.Producto, error) {
	return sendOne[entity.Producto](ctx, r.c, http.MethodPost, "/producto", p)
}

func (r *ProductoRepository) Update(ctx context.Context, id string, p *entity.Producto) (*entity.Producto, error) {
	return sendOne[entity.Producto](ctx, r.c, http.MethodPut, "/producto/"+url.PathEscape(id), p)
}

// SoftDelete archiva el producto (PATCH /producto/soft/:id).
func (r *ProductoRepository) SoftDelete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodPatch, "/producto/soft/"+url.PathEscape(id), nil, nil)
}

// HardDelete DELETE /producto/hard/:id.
func (r *ProductoRepository) HardDelete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/producto/hard/"+url.PathEscape(id), nil, nil)
}
