package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.TrabajoRepository = (*TrabajoRepository)(nil)

// TrabajoRepository implementa repository.TrabajoRepository sobre /trabajo.
// Todas las actualizaciones usan PATCH.
type TrabajoRepository struct {
	c *Client
}

// NewTrabajoRepository construye el repositorio.
func NewTrabajoRepository(c *Client) *TrabajoRepository {
	return &TrabajoRepository{c: c}
}

func (r *TrabajoRepository) List(ctx context.Context) ([]entity.Trabajo, error) {
	return getList[entity.Trabajo](ctx, r.c, "/trabajo")
}

func (r *TrabajoRepository) ListByEstado(ctx context.Context, estado entity.Estado) ([]entity.Trabajo, error) {
	return getList[entity.Trabajo](ctx, r.c, "/trabajo/estado/"+url.PathEscape(string(estado)))
}

func (r *TrabajoRepository) GetByID(ctx context.Context, id string) (*entity.Trabajo, error) {
	return sendOne[entity.Trabajo](ctx, r.c, http.MethodGet, "/trabajo/"+url.PathEscape(id), nil)
}

func (r *TrabajoRepository) Create(ctx context.Context, t *entity.Trabajo) (*entity.Trabajo, error) {
	return sendOne[entity.Trabajo](ctx, r.c, http.MethodPost, "/trabajo", t)
}

func (r *TrabajoRepository) Update(ctx context.Context, id string, t *entity.Trabajo) (*entity.Trabajo, error) {
	return sendOne[entity.Trabajo](ctx, r.c, http.MethodPatch, "/trabajo/"+url.PathEscape(id), t)
}

type estadoPatch struct {
	Estado entity.Estado `json:"estado"`
}

// UpdateEstado PATCH /trabajo/:id con el cuerpo {estado} y nada más.
// Si la API responde sin cuerpo se devuelve el trabajo con el estado nuevo.
func (r *TrabajoRepository) UpdateEstado(ctx context.Context, id string, estado entity.Estado) (*entity.Trabajo, error) {
	var out entity.Trabajo
	if err := r.c.do(ctx, http.MethodPatch, "/trabajo/"+url.PathEscape(id), estadoPatch{Estado: estado}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		out = entity.Trabajo{ID: id, Estado: estado}
	}
	return &out, nil
}

func (r *TrabajoRepository) SoftDelete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodPatch, "/trabajo/soft/"+url.PathEscape(id), nil, nil)
}

func (r *TrabajoRepository) HardDelete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/trabajo/hard/"+url.PathEscape(id), nil, nil)
}
