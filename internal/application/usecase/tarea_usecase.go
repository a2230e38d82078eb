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

// TareaUseCase CRUD del catálogo de servicios.
type TareaUseCase struct {
	repo      repository.TareaRepository
	validator *validation.Validator
}

// NewTareaUseCase construye el caso de uso.
func NewTareaUseCase(repo repository.TareaRepository, validator *validation.Validator) *TareaUseCase {
	return &TareaUseCase{repo: repo, validator: validator}
}

// List recarga las tareas y filtra por descripción.
func (uc *TareaUseCase) List(ctx context.Context, st *store.Store, q dto.ListQuery) (*dto.TareaListResponse, error) {
	st.Tareas.Dispatch(store.FilterChanged{Filters: store.Filters{Search: q.Search}})
	state, err := load(ctx, st.Tareas, uc.repo.List)
	if err != nil {
		return nil, err
	}
	out := filter(state.Items, func(t entity.Tarea) bool { return search.Matches(q.Search, t.Descripcion) })
	return &dto.TareaListResponse{Items: out, Total: len(out)}, nil
}

// Get devuelve la tarea y la deja seleccionada.
func (uc *TareaUseCase) Get(ctx context.Context, st *store.Store, id string) (*entity.Tarea, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Tareas.Dispatch(store.Selected[entity.Tarea]{Item: t})
	return t, nil
}

// Create valida y da de alta la tarea.
func (uc *TareaUseCase) Create(ctx context.Context, st *store.Store, in dto.TareaRequest) (*entity.Tarea, error) {
	t, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, t)
	if err != nil {
		return nil, fail(st.Tareas, err)
	}
	st.Tareas.Dispatch(store.Created[entity.Tarea]{Item: *created})
	return created, nil
}

// Update valida y envía PUT /tarea/:id.
func (uc *TareaUseCase) Update(ctx context.Context, st *store.Store, id string, in dto.TareaRequest) (*entity.Tarea, error) {
	t, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, id, t)
	if err != nil {
		return nil, fail(st.Tareas, err)
	}
	st.Tareas.Dispatch(store.Updated[entity.Tarea]{Item: *updated})
	return updated, nil
}

// SetActivo activa o desactiva la tarea. Las inactivas no se ofrecen al crear trabajos.
func (uc *TareaUseCase) SetActivo(ctx context.Context, st *store.Store, id string, in dto.TareaActivoRequest) (*entity.Tarea, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	updated, err := uc.repo.SetActive(ctx, id, *in.Activo)
	if err != nil {
		return nil, fail(st.Tareas, err)
	}
	st.Tareas.Dispatch(store.Updated[entity.Tarea]{Item: *updated})
	return updated, nil
}

// Delete elimina la tarea.
func (uc *TareaUseCase) Delete(ctx context.Context, st *store.Store, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fail(st.Tareas, err)
	}
	st.Tareas.Dispatch(store.Removed{ID: id})
	return nil
}

func (uc *TareaUseCase) fromRequest(in dto.TareaRequest) (*entity.Tarea, error) {
	in.Descripcion = strings.TrimSpace(in.Descripcion)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	return &entity.Tarea{
		Descripcion:    in.Descripcion,
		Precio:         in.Precio,
		TiempoEstimado: in.TiempoEstimado,
	}, nil
}
