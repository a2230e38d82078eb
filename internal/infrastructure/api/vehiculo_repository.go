package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.VehiculoRepository = (*VehiculoRepository)(nil)

// VehiculoRepository implementa repository.VehiculoRepository sobre /vehiculo.
type VehiculoRepository struct {
	c *Client
}

// NewVehiculoRepository construye el repositorio.
func NewVehiculoRepository(c *Client) *VehiculoRepository {
	return &VehiculoRepository{c: c}
}

// List GET /vehiculo/all (la API responde con el cliente poblado).
func (r *VehiculoRepository) List(ctx context.Context) ([]entity.Vehiculo, error) {
	return getList[entity.Vehiculo](ctx, r.c, "/vehiculo/all")
}

func (r *VehiculoRepository) GetByID(ctx context.Context, id string) (*entity.Vehiculo, error) {
	return sendOne[entity.Vehiculo](ctx, r.c, http.MethodGet, "/vehiculo/"+url.PathEscape(id), nil)
}

func (r *VehiculoRepository) Create(ctx context.Context, v *entity.Vehiculo) (*entity.Vehiculo, error) {
	return sendOne[entity.Vehiculo](ctx, r.c, http.MethodPost, "/vehiculo", v)
}

func (r *VehiculoRepository) Update(ctx context.Context, id string, v *entity.Vehiculo) (*entity.Vehiculo, error) {
	return sendOne[entity.Vehiculo](ctx, r.c, http.MethodPatch, "/vehiculo/"+url.PathEscape(id), v)
}

// Delete borra definitivamente (DELETE /vehiculo/hard/:id).
func (r *VehiculoRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/vehiculo/hard/"+url.PathEscape(id), nil, nil)
}
