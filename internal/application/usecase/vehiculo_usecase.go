package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/pkg/search"
)

// VehiculoUseCase CRUD de vehículos.
type VehiculoUseCase struct {
	repo      repository.VehiculoRepository
	validator *validation.Validator
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(repo repository.VehiculoRepository, validator *validation.Validator) *VehiculoUseCase {
	return &VehiculoUseCase{repo: repo, validator: validator}
}

// List recarga los vehículos y filtra por cliente y por patente, marca, modelo o nombre del dueño.
func (uc *VehiculoUseCase) List(ctx context.Context, st *store.Store, q dto.VehiculoQuery) (*dto.VehiculoListResponse, error) {
	st.Vehiculos.Dispatch(store.FilterChanged{Filters: store.Filters{Search: q.Search, Cliente: q.Cliente}})
	state, err := load(ctx, st.Vehiculos, uc.repo.List)
	if err != nil {
		return nil, err
	}
	out := filter(state.Items, func(v entity.Vehiculo) bool {
		if q.Cliente != "" && v.Cliente.ID() != q.Cliente {
			return false
		}
		return search.Matches(q.Search, v.Patente, v.Marca, v.Modelo, v.ClienteNombre())
	})
	return &dto.VehiculoListResponse{Items: out, Total: len(out)}, nil
}

// ListByCliente vehículos de un cliente, sin pasar por el estado de la sesión.
func (uc *VehiculoUseCase) ListByCliente(ctx context.Context, clienteID string) ([]entity.Vehiculo, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(items, func(v entity.Vehiculo) bool { return v.Cliente.ID() == clienteID }), nil
}

// Get devuelve el vehículo y lo deja seleccionado.
func (uc *VehiculoUseCase) Get(ctx context.Context, st *store.Store, id string) (*entity.Vehiculo, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Vehiculos.Dispatch(store.Selected[entity.Vehiculo]{Item: v})
	return v, nil
}

// Create valida y da de alta el vehículo. Una patente vacía no se envía.
func (uc *VehiculoUseCase) Create(ctx context.Context, st *store.Store, in dto.VehiculoRequest) (*entity.Vehiculo, error) {
	v, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, v)
	if err != nil {
		return nil, fail(st.Vehiculos, err)
	}
	st.Vehiculos.Dispatch(store.Created[entity.Vehiculo]{Item: *created})
	return created, nil
}

// Update valida y envía PATCH /vehiculo/:id.
func (uc *VehiculoUseCase) Update(ctx context.Context, st *store.Store, id string, in dto.VehiculoRequest) (*entity.Vehiculo, error) {
	v, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, id, v)
	if err != nil {
		return nil, fail(st.Vehiculos, err)
	}
	st.Vehiculos.Dispatch(store.Updated[entity.Vehiculo]{Item: *updated})
	return updated, nil
}

// Delete elimina el vehículo de forma definitiva.
func (uc *VehiculoUseCase) Delete(ctx context.Context, st *store.Store, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fail(st.Vehiculos, err)
	}
	st.Vehiculos.Dispatch(store.Removed{ID: id})
	return nil
}

func (uc *VehiculoUseCase) fromRequest(in dto.VehiculoRequest) (*entity.Vehiculo, error) {
	in.Patente = validation.NormalizePatente(in.Patente)
	in.Marca = strings.TrimSpace(in.Marca)
	in.Modelo = strings.TrimSpace(in.Modelo)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	return &entity.Vehiculo{
		Cliente: entity.Reference[entity.Persona](in.Cliente),
		Marca:   in.Marca,
		Modelo:  in.Modelo,
		Patente: in.Patente,
	}, nil
}
