package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.TareaRepository = (*TareaRepository)(nil)

// TareaRepository implementa repository.TareaRepository sobre /tarea.
type TareaRepository struct {
	c *Client
}

// NewTareaRepository construye el repositorio.
func NewTareaRepository(c *Client) *TareaRepository {
	return &TareaRepository{c: c}
}

func (r *TareaRepository) List(ctx context.Context) ([]entity.Tarea, error) {
	return getList[entity.Tarea](ctx, r.c, "/tarea")
}

func (r *TareaRepository) GetByID(ctx context.Context, id string) (*entity.Tarea, error) {
	return sendOne[entity.Tarea](ctx, r.c, http.MethodGet, "/tarea/"+url.PathEscape(id), nil)
}

func (r *TareaRepository) Create(ctx context.Context, t *entity.Tarea) (*entity.Tarea, error) {
	return sendOne[entity.Tarea](ctx, r.c, http.MethodPost, "/tarea", t)
}

func (r *TareaRepository) Update(ctx context.Context, id string, t *entity.Tarea) (*entity.Tarea, error) {
	return sendOne[entity.Tarea](ctx, r.c, http.MethodPut, "/tarea/"+url.PathEscape(id), t)
}

// SetActive PUT /tarea/:id con sólo {isActive}.
func (r *TareaRepository) SetActive(ctx context.Context, id string, active bool) (*entity.Tarea, error) {
	body := map[string]bool{"isActive": active}
	return sendOne[entity.Tarea](ctx, r.c, http.MethodPut, "/tarea/"+url.PathEscape(id), body)
}

func (r *TareaRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/tarea/"+url.PathEscape(id), nil, nil)
}
