package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

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
	"github.com/jhoicas/detailing-dashboard/pkg/search"
)

// OrdenPDFGenerator puerto para generar el PDF de una orden de trabajo.
type OrdenPDFGenerator interface {
	GenerateOrdenPDF(ctx context.Context, t *entity.Trabajo, r trabajo.Resumen, fecha time.Time) ([]byte, error)
}

// TrabajoUseCase órdenes de trabajo: listado, detalle, alta y edición directa, baja
// y el ciclo de vida de estados con confirmación.
type TrabajoUseCase struct {
	repo         repository.TrabajoRepository
	productoRepo repository.ProductoRepository
	vehiculoRepo repository.VehiculoRepository
	personaRepo  repository.PersonaRepository
	transiciones repository.TransicionRepository
	pdf          OrdenPDFGenerator
	validator    *validation.Validator
	log          *logger.Logger
	now          func() time.Time
}

// NewTrabajoUseCase construye el caso de uso.
func NewTrabajoUseCase(
	repo repository.TrabajoRepository,
	productoRepo repository.ProductoRepository,
	vehiculoRepo repository.VehiculoRepository,
	personaRepo repository.PersonaRepository,
	transiciones repository.TransicionRepository,
	pdf OrdenPDFGenerator,
	validator *validation.Validator,
	log *logger.Logger,
) *TrabajoUseCase {
	return &TrabajoUseCase{
		repo:         repo,
		productoRepo: productoRepo,
		vehiculoRepo: vehiculoRepo,
		personaRepo:  personaRepo,
		transiciones: transiciones,
		pdf:          pdf,
		validator:    validator,
		log:          log.Component("trabajos"),
		now:          time.Now,
	}
}

// ─── Listado y detalle ──────────────────────────────────────────────────────

// List recarga los trabajos. Con estado se filtra en el servidor (GET /trabajo/estado/:estado);
// la búsqueda recorre marca, modelo y patente del vehículo y nombre y apellido del cliente.
func (uc *TrabajoUseCase) List(ctx context.Context, st *store.Store, q dto.TrabajoQuery) (*dto.TrabajoListResponse, error) {
	if q.Estado != "" && !entity.Estado(q.Estado).Valid() {
		return nil, domain.NewValidationError("estado", "Estado inválido")
	}
	st.Trabajos.Dispatch(store.FilterChanged{Filters: store.Filters{Search: q.Search, Estado: q.Estado}})
	state, err := load(ctx, st.Trabajos, uc.fetch(entity.Estado(q.Estado)))
	if err != nil {
		return nil, err
	}

	porEstado := make(map[string]int, len(entity.Estados))
	for _, e := range entity.Estados {
		porEstado[string(e)] = 0
	}
	for _, t := range state.Items {
		porEstado[string(t.Estado)]++
	}
	out := filter(state.Items, func(t entity.Trabajo) bool { return matchTrabajo(q.Search, t) })
	return &dto.TrabajoListResponse{Items: out, Total: len(out), PorEstado: porEstado}, nil
}

func matchTrabajo(q string, t entity.Trabajo) bool {
	fields := make([]string, 0, 5)
	if v, ok := t.Vehiculo.Entity(); ok {
		fields = append(fields, v.Marca, v.Modelo, v.Patente)
	}
	if c, ok := t.Cliente(); ok {
		fields = append(fields, c.Nombre, c.Apellido)
	}
	return search.Matches(q, fields...)
}

func (uc *TrabajoUseCase) fetch(estado entity.Estado) func(context.Context) ([]entity.Trabajo, error) {
	if estado == "" {
		return uc.repo.List
	}
	return func(ctx context.Context) ([]entity.Trabajo, error) {
		return uc.repo.ListByEstado(ctx, estado)
	}
}

// Detail devuelve la orden con subtotales (precio de productos en vivo) y la deja seleccionada.
func (uc *TrabajoUseCase) Detail(ctx context.Context, st *store.Store, id string) (*dto.TrabajoDetalleResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.ProductosUsados, err = uc.resolveProductos(ctx, t.ProductosUsados); err != nil {
		return nil, err
	}
	st.Trabajos.Dispatch(store.Selected[entity.Trabajo]{Item: t})

	resp := &dto.TrabajoDetalleResponse{
		Trabajo:    *t,
		Referencia: trabajo.Referencia(t.ID),
		Resumen:    trabajo.Calcular(t.Tareas, t.ProductosUsados),
	}
	if next, ok := trabajo.Siguiente(t.Estado); ok {
		resp.Siguiente = string(next)
	}
	return resp, nil
}

// resolveProductos completa en paralelo las líneas cuyo producto llegó sólo como id.
func (uc *TrabajoUseCase) resolveProductos(ctx context.Context, lines []entity.ProductoLinea) ([]entity.ProductoLinea, error) {
	out := slices.Clone(lines)
	g, gctx := errgroup.WithContext(ctx)
	for i := range out {
		if out[i].Producto.IsPopulated() || out[i].Producto.IsZero() {
			continue
		}
		g.Go(func() error {
			p, err := uc.productoRepo.GetByID(gctx, out[i].Producto.ID())
			if err != nil {
				return err
			}
			out[i].Producto = entity.Populated(*p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ─── Alta, edición y baja ───────────────────────────────────────────────────

// Create valida y da de alta una orden en estado Pendiente con el total calculado.
func (uc *TrabajoUseCase) Create(ctx context.Context, st *store.Store, in dto.TrabajoRequest) (*entity.Trabajo, error) {
	t, err := uc.fromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	t.Estado = entity.EstadoPendiente
	created, err := uc.repo.Create(ctx, t)
	if err != nil {
		return nil, fail(st.Trabajos, err)
	}
	st.Trabajos.Dispatch(store.Created[entity.Trabajo]{Item: *created})
	return created, nil
}

// Update edita la orden por PATCH. El estado no cambia por acá.
func (uc *TrabajoUseCase) Update(ctx context.Context, st *store.Store, id string, in dto.TrabajoRequest) (*entity.Trabajo, error) {
	t, err := uc.fromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Estado = actual.Estado
	updated, err := uc.repo.Update(ctx, id, t)
	if err != nil {
		return nil, fail(st.Trabajos, err)
	}
	st.Trabajos.Dispatch(store.Updated[entity.Trabajo]{Item: *updated})
	return updated, nil
}

// Archive baja lógica (PATCH /trabajo/soft/:id).
func (uc *TrabajoUseCase) Archive(ctx context.Context, st *store.Store, id string) error {
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return fail(st.Trabajos, err)
	}
	st.Trabajos.Dispatch(store.Removed{ID: id})
	return nil
}

// Delete baja definitiva (DELETE /trabajo/hard/:id).
func (uc *TrabajoUseCase) Delete(ctx context.Context, st *store.Store, id string) error {
	if err := uc.repo.HardDelete(ctx, id); err != nil {
		return fail(st.Trabajos, err)
	}
	st.Trabajos.Dispatch(store.Removed{ID: id})
	return nil
}

func (uc *TrabajoUseCase) fromRequest(ctx context.Context, in dto.TrabajoRequest) (*entity.Trabajo, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	t := &entity.Trabajo{
		Vehiculo:        entity.Reference[entity.Vehiculo](in.Vehiculo),
		Tareas:          make([]entity.TareaLinea, 0, len(in.Tareas)),
		ProductosUsados: make([]entity.ProductoLinea, 0, len(in.ProductosUsados)),
		Observaciones:   in.Observaciones,
	}
	for _, l := range in.Tareas {
		t.Tareas = append(t.Tareas, entity.TareaLinea{
			Tarea:           entity.Reference[entity.Tarea](l.Tarea),
			PrecioAlMomento: l.PrecioAlMomento,
		})
	}
	for _, l := range in.ProductosUsados {
		t.ProductosUsados = append(t.ProductosUsados, entity.ProductoLinea{
			Producto: entity.Reference[entity.Producto](l.Producto),
			Cantidad: l.Cantidad,
		})
	}
	if err := sinDuplicados(t); err != nil {
		return nil, err
	}
	productos, err := uc.resolveProductos(ctx, t.ProductosUsados)
	if err != nil {
		return nil, err
	}
	// Mismo control que al agregar un producto en el formulario.
	for _, l := range productos {
		if p, ok := l.Producto.Entity(); ok && l.Cantidad > p.StockActual {
			return nil, &trabajo.DisponibilidadError{Disponible: p.StockActual}
		}
	}
	t.PrecioTotal = trabajo.Calcular(t.Tareas, productos).Total
	return t, nil
}

func sinDuplicados(t *entity.Trabajo) error {
	tareas := make(map[string]bool, len(t.Tareas))
	for _, l := range t.Tareas {
		if tareas[l.Tarea.ID()] {
			return fmt.Errorf("la tarea ya está en la orden: %w", domain.ErrDuplicate)
		}
		tareas[l.Tarea.ID()] = true
	}
	productos := make(map[string]bool, len(t.ProductosUsados))
	for _, l := range t.ProductosUsados {
		if productos[l.Producto.ID()] {
			return fmt.Errorf("el producto ya está en la orden: %w", domain.ErrDuplicate)
		}
		productos[l.Producto.ID()] = true
	}
	return nil
}

// ─── Ciclo de vida ──────────────────────────────────────────────────────────

// SolicitarCambioEstado valida la transición y, si corresponde, deja una confirmación
// pendiente. No envía nada a la API hasta que se confirma.
func (uc *TrabajoUseCase) SolicitarCambioEstado(ctx context.Context, st *store.Store, id string, in dto.CambioEstadoRequest) (*dto.CambioEstadoResponse, error) {
	if err := uc.validator.Struct(in); err != nil {
		return nil, err
	}
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	hacia := entity.Estado(in.Estado)
	cambia, err := trabajo.ValidarTransicion(t.Estado, hacia)
	if err != nil {
		return nil, err
	}
	if !cambia {
		return &dto.CambioEstadoResponse{Cambio: false}, nil
	}
	if trabajo.RequiereStock(t.Estado, hacia) {
		productos, err := uc.resolveProductos(ctx, t.ProductosUsados)
		if err != nil {
			return nil, err
		}
		if err := trabajo.VerificarStock(productos); err != nil {
			return nil, err
		}
	}

	c := st.PutConfirmacion(store.Confirmacion{
		ID:        uuid.New().String(),
		TrabajoID: t.ID,
		Desde:     t.Estado,
		Hacia:     hacia,
		Mensaje:   trabajo.MensajeConfirmacion(t.Estado, hacia),
	})
	return &dto.CambioEstadoResponse{Cambio: true, Confirmacion: confirmacionResponse(c)}, nil
}

// Confirmar aplica un cambio pendiente: PATCH con sólo el estado, recarga el listado y
// actualiza el trabajo seleccionado. Si la API falla, el estado de la sesión no cambia.
func (uc *TrabajoUseCase) Confirmar(ctx context.Context, st *store.Store, personaID, confirmacionID string) (*entity.Trabajo, error) {
	c, err := st.TakeConfirmacion(confirmacionID)
	if err != nil {
		return nil, err
	}
	if err := uc.revalidar(ctx, c); err != nil {
		return nil, err
	}
	updated, err := uc.repo.UpdateEstado(ctx, c.TrabajoID, c.Hacia)
	if err != nil {
		return nil, fail(st.Trabajos, err)
	}

	filters := st.Trabajos.State().Filters
	if _, err := load(ctx, st.Trabajos, uc.fetch(entity.Estado(filters.Estado))); err != nil {
		uc.log.Warn().Err(err).Str("trabajo_id", c.TrabajoID).Msg("no se pudo recargar el listado")
	}
	st.Trabajos.Dispatch(store.SelectionPatched[entity.Trabajo]{Patch: func(t *entity.Trabajo) {
		if t.ID == c.TrabajoID {
			t.Estado = c.Hacia
		}
	}})

	tr := &entity.Transicion{
		ID:          uuid.New().String(),
		TrabajoID:   c.TrabajoID,
		PersonaID:   personaID,
		Desde:       c.Desde,
		Hacia:       c.Hacia,
		PrecioTotal: updated.PrecioTotal,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.transiciones.Append(ctx, tr); err != nil {
		uc.log.Error().Err(err).Str("trabajo_id", c.TrabajoID).Msg("no se pudo registrar el cambio de estado")
	}
	uc.log.Info().
		Str("trabajo_id", c.TrabajoID).
		Str("desde", string(c.Desde)).
		Str("hacia", string(c.Hacia)).
		Msg("estado actualizado")
	return updated, nil
}

// revalidar vuelve a leer la orden antes de aplicar una confirmación: si el estado ya no es
// el de cuando se pidió (otra confirmación se aplicó antes), el cambio se rechaza.
func (uc *TrabajoUseCase) revalidar(ctx context.Context, c store.Confirmacion) error {
	t, err := uc.repo.GetByID(ctx, c.TrabajoID)
	if err != nil {
		return err
	}
	if t.Estado != c.Desde {
		if _, err := trabajo.ValidarTransicion(t.Estado, c.Hacia); err != nil {
			return err
		}
		return fmt.Errorf("el trabajo pasó a %q después de pedir la confirmación: %w", t.Estado, domain.ErrConflict)
	}
	if !trabajo.RequiereStock(c.Desde, c.Hacia) {
		return nil
	}
	productos, err := uc.resolveProductos(ctx, t.ProductosUsados)
	if err != nil {
		return err
	}
	return trabajo.VerificarStock(productos)
}

// Cancelar descarta la confirmación pendiente sin tocar nada más.
func (uc *TrabajoUseCase) Cancelar(st *store.Store, confirmacionID string) error {
	_, err := st.TakeConfirmacion(confirmacionID)
	return err
}

// Historial cambios de estado registrados para la orden, del más viejo al más nuevo.
func (uc *TrabajoUseCase) Historial(ctx context.Context, id string) ([]entity.Transicion, error) {
	return uc.transiciones.ListByTrabajo(ctx, id)
}

// PDF genera la orden imprimible. Vehículo y cliente se completan si llegaron sólo como id.
func (uc *TrabajoUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if t.ProductosUsados, err = uc.resolveProductos(ctx, t.ProductosUsados); err != nil {
		return nil, "", err
	}
	uc.resolveVehiculo(ctx, t)

	data, err := uc.pdf.GenerateOrdenPDF(ctx, t, trabajo.Calcular(t.Tareas, t.ProductosUsados), uc.now())
	if err != nil {
		return nil, "", err
	}
	return data, trabajo.Referencia(t.ID), nil
}

// resolveVehiculo completa vehículo y dueño para el PDF. Si falla se imprime sólo el id.
func (uc *TrabajoUseCase) resolveVehiculo(ctx context.Context, t *entity.Trabajo) {
	v, ok := t.Vehiculo.Entity()
	if !ok && !t.Vehiculo.IsZero() {
		got, err := uc.vehiculoRepo.GetByID(ctx, t.Vehiculo.ID())
		if err != nil {
			uc.log.Warn().Err(err).Str("vehiculo_id", t.Vehiculo.ID()).Msg("vehículo no disponible para el PDF")
			return
		}
		v = got
	}
	if v == nil {
		return
	}
	if !v.Cliente.IsPopulated() && !v.Cliente.IsZero() {
		c, err := uc.personaRepo.GetByID(ctx, v.Cliente.ID())
		if err != nil && !errors.Is(err, context.Canceled) {
			uc.log.Warn().Err(err).Str("cliente_id", v.Cliente.ID()).Msg("cliente no disponible para el PDF")
		}
		if err == nil {
			v.Cliente = entity.Populated(*c)
		}
	}
	t.Vehiculo = entity.Populated(*v)
}

func confirmacionResponse(c store.Confirmacion) *dto.ConfirmacionResponse {
	return &dto.ConfirmacionResponse{
		ID:        c.ID,
		TrabajoID: c.TrabajoID,
		Desde:     c.Desde,
		Hacia:     c.Hacia,
		Mensaje:   c.Mensaje,
		ExpiraEn:  c.ExpiresAt,
	}
}
