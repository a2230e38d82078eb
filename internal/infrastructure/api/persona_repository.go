package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
)

var _ repository.PersonaRepository = (*PersonaRepository)(nil)

// PersonaRepository implementa repository.PersonaRepository sobre /persona.
type PersonaRepository struct {
	c *Client
}

// NewPersonaRepository construye el repositorio.
func NewPersonaRepository(c *Client) *PersonaRepository {
	return &PersonaRepository{c: c}
}

func (r *PersonaRepository) List(ctx context.Context) ([]entity.Persona, error) {
	return getList[entity.Persona](ctx, r.c, "/persona")
}

func (r *PersonaRepository) ListByTipo(ctx context.Context, tipo entity.TipoPersona) ([]entity.Persona, error) {
	return getList[entity.Persona](ctx, r.c, "/persona/tipo/"+url.PathEscape(string(tipo)))
}

func (r *PersonaRepository) GetByID(ctx context.Context, id string) (*entity.Persona, error) {
	return sendOne[entity.Persona](ctx, r.c, http.MethodGet, "/persona/"+url.PathEscape(id), nil)
}

func (r *PersonaRepository) Create(ctx context.Context, p *entity.Persona) (*entity.Persona, error) {
	return sendOne[entity.Persona](ctx, r.c, http.MethodPost, "/persona", p)
}

func (r *PersonaRepository) Update(ctx context.Context, id string, p *entity.Persona) (*entity.Persona, error) {
	return sendOne[entity.Persona](ctx, r.c, http.MethodPut, "/persona/"+url.PathEscape(id), p)
}

func (r *PersonaRepository) Delete(ctx context.Context, id string) error {
	return r.c.do(ctx, http.MethodDelete, "/persona/"+url.PathEscape(id), nil, nil)
}
