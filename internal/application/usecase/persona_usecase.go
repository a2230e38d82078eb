package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/pkg/search"
)

// PersonaUseCase consultas sobre todas las personas (sección de administración).
type PersonaUseCase struct {
	repo repository.PersonaRepository
}

// NewPersonaUseCase construye el caso de uso.
func NewPersonaUseCase(repo repository.PersonaRepository) *PersonaUseCase {
	return &PersonaUseCase{repo: repo}
}

// List devuelve todas las personas que coinciden con la búsqueda.
func (uc *PersonaUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.PersonaListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return personaList(items, q.Search), nil
}

// ListByTipo devuelve las personas de un tipo.
func (uc *PersonaUseCase) ListByTipo(ctx context.Context, tipo string) (*dto.PersonaListResponse, error) {
	t := entity.TipoPersona(tipo)
	if !t.Valid() {
		return nil, domain.NewValidationError("tipo", "Tipo de persona inválido")
	}
	items, err := uc.repo.ListByTipo(ctx, t)
	if err != nil {
		return nil, err
	}
	return personaList(items, ""), nil
}

func personaList(items []entity.Persona, q string) *dto.PersonaListResponse {
	out := filter(items, func(p entity.Persona) bool {
		return search.Matches(q, p.Nombre, p.Apellido, p.DNI, p.Email)
	})
	return &dto.PersonaListResponse{Items: out, Total: len(out)}
}

// personaTipoUseCase CRUD de personas de un tipo fijo (clientes o proveedores).
// Lo que cambia entre ambos es cómo se dan de alta.
type personaTipoUseCase struct {
	tipo      entity.TipoPersona
	repo      repository.PersonaRepository
	validator *validation.Validator
	container func(*store.Store) *store.Container[entity.Persona]
	create    func(ctx context.Context, p *entity.Persona) (*entity.Persona, error)
}

// List recarga el listado de la sesión y aplica la búsqueda por nombre, apellido, DNI o email.
func (uc *personaTipoUseCase) List(ctx context.Context, st *store.Store, q dto.ListQuery) (*dto.PersonaListResponse, error) {
	c := uc.container(st)
	c.Dispatch(store.FilterChanged{Filters: store.Filters{Search: q.Search}})
	state, err := load(ctx, c, func(ctx context.Context) ([]entity.Persona, error) {
		return uc.repo.ListByTipo(ctx, uc.tipo)
	})
	if err != nil {
		return nil, err
	}
	return personaList(state.Items, q.Search), nil
}

// Get devuelve la persona sólo si es del tipo del caso de uso; si no, ErrNotFound.
func (uc *personaTipoUseCase) Get(ctx context.Context, st *store.Store, id string) (*entity.Persona, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Tipo != uc.tipo {
		return nil, fmt.Errorf("%s %s: %w", strings.ToLower(string(uc.tipo)), id, domain.ErrNotFound)
	}
	uc.container(st).Dispatch(store.Selected[entity.Persona]{Item: p})
	return p, nil
}

// Create valida el formulario y da de alta la persona.
func (uc *personaTipoUseCase) Create(ctx context.Context, st *store.Store, in dto.PersonaRequest) (*entity.Persona, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	c := uc.container(st)
	created, err := uc.create(ctx, p)
	if err != nil {
		return nil, fail(c, err)
	}
	c.Dispatch(store.Created[entity.Persona]{Item: *created})
	return created, nil
}

// Update valida y envía PUT /persona/:id conservando el tipo.
func (uc *personaTipoUseCase) Update(ctx context.Context, st *store.Store, id string, in dto.PersonaRequest) (*entity.Persona, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	c := uc.container(st)
	updated, err := uc.repo.Update(ctx, id, p)
	if err != nil {
		return nil, fail(c, err)
	}
	c.Dispatch(store.Updated[entity.Persona]{Item: *updated})
	return updated, nil
}

// Delete elimina la persona; si la API falla el listado queda como estaba.
func (uc *personaTipoUseCase) Delete(ctx context.Context, st *store.Store, id string) error {
	c := uc.container(st)
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	c.Dispatch(store.Removed{ID: id})
	return nil
}

func (uc *personaTipoUseCase) fromRequest(in dto.PersonaRequest) (*entity.Persona, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Apellido = strings.TrimSpace(in.Apellido)
	in.Email = strings.TrimSpace(in.Email)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	return &entity.Persona{
		Nombre:    in.Nombre,
		Apellido:  in.Apellido,
		DNI:       in.DNI,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CUIT:      in.CUIT,
		Tipo:      uc.tipo,
	}, nil
}

// ClienteUseCase CRUD de clientes (personas de tipo Cliente).
type ClienteUseCase struct {
	*personaTipoUseCase
}

// NewClienteUseCase construye el caso de uso. El alta es POST /persona con tipo Cliente.
func NewClienteUseCase(repo repository.PersonaRepository, validator *validation.Validator) *ClienteUseCase {
	return &ClienteUseCase{&personaTipoUseCase{
		tipo:      entity.TipoCliente,
		repo:      repo,
		validator: validator,
		container: func(st *store.Store) *store.Container[entity.Persona] { return st.Clientes },
		create:    repo.Create,
	}}
}

// ProveedorUseCase CRUD de proveedores (personas de tipo Proveedor).
type ProveedorUseCase struct {
	*personaTipoUseCase
}

// NewProveedorUseCase construye el caso de uso. La API sólo da de alta proveedores por
// el registro, que exige password: se usa defaultPassword.
func NewProveedorUseCase(
	repo repository.PersonaRepository,
	authRepo repository.AuthRepository,
	validator *validation.Validator,
	defaultPassword string,
) *ProveedorUseCase {
	return &ProveedorUseCase{&personaTipoUseCase{
		tipo:      entity.TipoProveedor,
		repo:      repo,
		validator: validator,
		container: func(st *store.Store) *store.Container[entity.Persona] { return st.Proveedores },
		create: func(ctx context.Context, p *entity.Persona) (*entity.Persona, error) {
			return authRepo.Register(ctx, &entity.Registro{Persona: *p, Password: defaultPassword})
		},
	}}
}
