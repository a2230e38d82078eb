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

// ProductoUseCase CRUD de productos. El stock lo descuenta la API al usarse en trabajos.
type ProductoUseCase struct {
	repo      repository.ProductoRepository
	validator *validation.Validator
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, validator *validation.Validator) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, validator: validator}
}

// List recarga los productos, aplica la búsqueda por nombre y el filtro "solo stock bajo".
// StockBajo cuenta sobre todo el listado, no sobre el filtrado.
func (uc *ProductoUseCase) List(ctx context.Context, st *store.Store, q dto.ProductoQuery) (*dto.ProductoListResponse, error) {
	st.Productos.Dispatch(store.FilterChanged{Filters: store.Filters{Search: q.Search, StockBajo: q.StockBajo}})
	state, err := load(ctx, st.Productos, uc.repo.List)
	if err != nil {
		return nil, err
	}
	bajo := 0
	for _, p := range state.Items {
		if p.StockBajo() {
			bajo++
		}
	}
	out := filter(state.Items, func(p entity.Producto) bool {
		if q.StockBajo && !p.StockBajo() {
			return false
		}
		return search.Matches(q.Search, p.Nombre)
	})
	return &dto.ProductoListResponse{Items: out, Total: len(out), StockBajo: bajo}, nil
}

// ListLowStock productos con stock por debajo del mínimo, según la API.
func (uc *ProductoUseCase) ListLowStock(ctx context.Context) (*dto.ProductoListResponse, error) {
	items, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductoListResponse{Items: items, Total: len(items), StockBajo: len(items)}, nil
}

// Get devuelve el producto y lo deja seleccionado.
func (uc *ProductoUseCase) Get(ctx context.Context, st *store.Store, id string) (*entity.Producto, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Productos.Dispatch(store.Selected[entity.Producto]{Item: p})
	return p, nil
}

// Create valida y da de alta el producto. Sin stock_minimo se usa 5.
func (uc *ProductoUseCase) Create(ctx context.Context, st *store.Store, in dto.ProductoRequest) (*entity.Producto, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, fail(st.Productos, err)
	}
	st.Productos.Dispatch(store.Created[entity.Producto]{Item: *created})
	return created, nil
}

// Update valida y envía PUT /producto/:id.
func (uc *ProductoUseCase) Update(ctx context.Context, st *store.Store, id string, in dto.ProductoRequest) (*entity.Producto, error) {
	p, err := uc.fromRequest(in)
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, id, p)
	if err != nil {
		return nil, fail(st.Productos, err)
	}
	st.Productos.Dispatch(store.Updated[entity.Producto]{Item: *updated})
	return updated, nil
}

// Archive da de baja lógica el producto; deja de aparecer en el listado.
func (uc *ProductoUseCase) Archive(ctx context.Context, st *store.Store, id string) error {
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return fail(st.Productos, err)
	}
	st.Productos.Dispatch(store.Removed{ID: id})
	return nil
}

// Delete elimina el producto de forma definitiva.
func (uc *ProductoUseCase) Delete(ctx context.Context, st *store.Store, id string) error {
	if err := uc.repo.HardDelete(ctx, id); err != nil {
		return fail(st.Productos, err)
	}
	st.Productos.Dispatch(store.Removed{ID: id})
	return nil
}

func (uc *ProductoUseCase) fromRequest(in dto.ProductoRequest) (*entity.Producto, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	minimo := entity.StockMinimoPorDefecto
	if in.StockMinimo != nil {
		minimo = *in.StockMinimo
	}
	return &entity.Producto{
		Nombre:      in.Nombre,
		Proveedor:   entity.Reference[entity.Persona](in.Proveedor),
		PrecioVenta: in.PrecioVenta,
		StockActual: in.StockActual,
		StockMinimo: minimo,
	}, nil
}
