package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/internal/domain/trabajo"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

// BorradorUseCase formulario de alta de trabajo: un borrador por sesión armado sobre una
// foto del catálogo (clientes, tareas activas, productos).
type BorradorUseCase struct {
	personaRepo  repository.PersonaRepository
	tareaRepo    repository.TareaRepository
	productoRepo repository.ProductoRepository
	vehiculos    *VehiculoUseCase
	trabajoRepo  repository.TrabajoRepository
	validator    *validation.Validator
	log          *logger.Logger
}

// NewBorradorUseCase construye el caso de uso.
func NewBorradorUseCase(
	personaRepo repository.PersonaRepository,
	tareaRepo repository.TareaRepository,
	productoRepo repository.ProductoRepository,
	vehiculos *VehiculoUseCase,
	trabajoRepo repository.TrabajoRepository,
	validator *validation.Validator,
	log *logger.Logger,
) *BorradorUseCase {
	return &BorradorUseCase{
		personaRepo:  personaRepo,
		tareaRepo:    tareaRepo,
		productoRepo: productoRepo,
		vehiculos:    vehiculos,
		trabajoRepo:  trabajoRepo,
		validator:    validator,
		log:          log.Component("borrador"),
	}
}

// Iniciar carga el catálogo en paralelo y reemplaza el borrador de la sesión por uno vacío.
func (uc *BorradorUseCase) Iniciar(ctx context.Context, st *store.Store) (*dto.BorradorResponse, error) {
	var cat trabajo.Catalogo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := uc.personaRepo.ListByTipo(gctx, entity.TipoCliente)
		if err != nil {
			return fmt.Errorf("clientes: %w", err)
		}
		cat.Clientes = items
		return nil
	})
	g.Go(func() error {
		items, err := uc.tareaRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("tareas: %w", err)
		}
		cat.Tareas = filter(items, entity.Tarea.Activa)
		return nil
	})
	g.Go(func() error {
		items, err := uc.productoRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("productos: %w", err)
		}
		cat.Productos = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	b := trabajo.NuevoBorrador(uuid.New().String(), cat)
	st.SetBorrador(b)
	return borradorResponse(b), nil
}

// Obtener devuelve el borrador en edición.
func (uc *BorradorUseCase) Obtener(st *store.Store) (*dto.BorradorResponse, error) {
	return uc.with(st, func(*trabajo.Borrador) error { return nil })
}

// Actualizar cambia cliente, vehículo u observaciones. Cambiar de cliente limpia el vehículo;
// el vehículo tiene que ser de ese cliente.
func (uc *BorradorUseCase) Actualizar(ctx context.Context, st *store.Store, in dto.BorradorUpdateRequest) (*dto.BorradorResponse, error) {
	var clienteID string
	if err := st.WithBorrador(func(b *trabajo.Borrador) error {
		clienteID = b.ClienteID
		return nil
	}); err != nil {
		return nil, err
	}
	if in.Cliente != nil {
		clienteID = strings.TrimSpace(*in.Cliente)
	}
	var vehiculoID string
	if in.Vehiculo != nil {
		vehiculoID = strings.TrimSpace(*in.Vehiculo)
	}
	if vehiculoID != "" {
		if err := uc.vehiculoDelCliente(ctx, clienteID, vehiculoID); err != nil {
			return nil, err
		}
	}

	return uc.with(st, func(b *trabajo.Borrador) error {
		if in.Cliente != nil {
			if clienteID != "" && !slices.ContainsFunc(b.Catalogo.Clientes, func(p entity.Persona) bool { return p.ID == clienteID }) {
				return fmt.Errorf("cliente %s: %w", clienteID, domain.ErrNotFound)
			}
			b.ElegirCliente(clienteID)
		}
		if in.Vehiculo != nil {
			if vehiculoID != "" && b.ClienteID != clienteID {
				return fmt.Errorf("el cliente del borrador cambió: %w", domain.ErrConflict)
			}
			b.VehiculoID = vehiculoID
		}
		if in.Observaciones != nil {
			b.Observaciones = *in.Observaciones
		}
		return nil
	})
}

func (uc *BorradorUseCase) vehiculoDelCliente(ctx context.Context, clienteID, vehiculoID string) error {
	if clienteID == "" {
		return domain.NewValidationError("vehiculo", "Primero seleccione un cliente")
	}
	vehiculos, err := uc.vehiculos.ListByCliente(ctx, clienteID)
	if err != nil {
		return err
	}
	if !slices.ContainsFunc(vehiculos, func(v entity.Vehiculo) bool { return v.ID == vehiculoID }) {
		return domain.NewValidationError("vehiculo", "El vehículo no pertenece al cliente")
	}
	return nil
}

// Vehiculos vehículos del cliente elegido; vacío si todavía no hay cliente.
func (uc *BorradorUseCase) Vehiculos(ctx context.Context, st *store.Store) ([]entity.Vehiculo, error) {
	var clienteID string
	if err := st.WithBorrador(func(b *trabajo.Borrador) error {
		clienteID = b.ClienteID
		return nil
	}); err != nil {
		return nil, err
	}
	if clienteID == "" {
		return []entity.Vehiculo{}, nil
	}
	return uc.vehiculos.ListByCliente(ctx, clienteID)
}

// AgregarTarea agrega una tarea del catálogo con su precio congelado.
func (uc *BorradorUseCase) AgregarTarea(st *store.Store, in dto.BorradorTareaRequest) (*dto.BorradorResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	return uc.with(st, func(b *trabajo.Borrador) error { return b.AgregarTarea(in.Tarea) })
}

// QuitarTarea quita la tarea del borrador.
func (uc *BorradorUseCase) QuitarTarea(st *store.Store, tareaID string) (*dto.BorradorResponse, error) {
	return uc.with(st, func(b *trabajo.Borrador) error {
		b.QuitarTarea(tareaID)
		return nil
	})
}

// AgregarProducto agrega un producto controlando la cantidad contra el stock de la foto.
func (uc *BorradorUseCase) AgregarProducto(st *store.Store, in dto.BorradorProductoRequest) (*dto.BorradorResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	return uc.with(st, func(b *trabajo.Borrador) error { return b.AgregarProducto(in.Producto, in.Cantidad) })
}

// QuitarProducto quita el producto del borrador.
func (uc *BorradorUseCase) QuitarProducto(st *store.Store, productoID string) (*dto.BorradorResponse, error) {
	return uc.with(st, func(b *trabajo.Borrador) error {
		b.QuitarProducto(productoID)
		return nil
	})
}

// Enviar valida el borrador y crea el trabajo (POST /trabajo). El nuevo trabajo queda
// primero en el listado y el borrador se descarta. Si la API falla el borrador se conserva.
func (uc *BorradorUseCase) Enviar(ctx context.Context, st *store.Store) (*entity.Trabajo, error) {
	var t entity.Trabajo
	if err := st.WithBorrador(func(b *trabajo.Borrador) error {
		var err error
		t, err = b.Trabajo()
		return err
	}); err != nil {
		return nil, err
	}

	created, err := uc.trabajoRepo.Create(ctx, &t)
	if err != nil {
		return nil, fail(st.Trabajos, err)
	}
	st.Trabajos.Dispatch(store.Created[entity.Trabajo]{Item: *created})
	st.ClearBorrador()
	uc.log.Info().Str("trabajo_id", created.ID).Str("total", created.PrecioTotal.String()).Msg("trabajo creado")
	return created, nil
}

// Descartar elimina el borrador sin enviar nada.
func (uc *BorradorUseCase) Descartar(st *store.Store) {
	st.ClearBorrador()
}

func (uc *BorradorUseCase) with(st *store.Store, fn func(b *trabajo.Borrador) error) (*dto.BorradorResponse, error) {
	var resp *dto.BorradorResponse
	err := st.WithBorrador(func(b *trabajo.Borrador) error {
		if err := fn(b); err != nil {
			return err
		}
		resp = borradorResponse(b)
		return nil
	})
	return resp, err
}

func borradorResponse(b *trabajo.Borrador) *dto.BorradorResponse {
	resp := &dto.BorradorResponse{
		ID:            b.ID,
		Cliente:       b.ClienteID,
		Vehiculo:      b.VehiculoID,
		Observaciones: b.Observaciones,
		Tareas:        make([]dto.BorradorTarea, 0, len(b.Tareas)),
		Productos:     make([]dto.BorradorProducto, 0, len(b.Productos)),
		Resumen:       b.Resumen(),
		Catalogo: dto.CatalogoResponse{
			Clientes:  b.Catalogo.Clientes,
			Tareas:    b.Catalogo.Tareas,
			Productos: b.Catalogo.Productos,
		},
	}
	for _, l := range b.Tareas {
		bt := dto.BorradorTarea{TareaID: l.Tarea.ID(), PrecioAlMomento: l.PrecioAlMomento}
		if t, ok := l.Tarea.Entity(); ok {
			bt.Descripcion = t.Descripcion
		}
		resp.Tareas = append(resp.Tareas, bt)
	}
	for _, l := range b.Productos {
		bp := dto.BorradorProducto{ProductoID: l.Producto.ID(), Cantidad: l.Cantidad, Subtotal: trabajo.SubtotalLinea(l)}
		if p, ok := l.Producto.Entity(); ok {
			bp.Nombre = p.Nombre
			bp.PrecioVenta = p.PrecioVenta
			bp.StockActual = p.StockActual
		}
		resp.Productos = append(resp.Productos, bp)
	}
	return resp
}
