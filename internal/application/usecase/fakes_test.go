package usecase

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// fakeRepo imita la API del taller en memoria. err fuerza el fallo de cualquier llamada.
type fakeRepo[T entity.Identifiable] struct {
	mu     sync.Mutex
	items  []T
	err    error
	calls  int
	last   *T
	setID  func(*T, string)
	nextID int
}

func newFakeRepo[T entity.Identifiable](setID func(*T, string), items ...T) *fakeRepo[T] {
	return &fakeRepo[T]{items: items, setID: setID}
}

func (f *fakeRepo[T]) begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeRepo[T]) list(keep func(T) bool) ([]T, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []T{}
	for _, it := range f.items {
		if keep == nil || keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRepo[T]) get(id string) (*T, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.items, func(it T) bool { return it.EntityID() == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	it := f.items[i]
	return &it, nil
}

func (f *fakeRepo[T]) create(it *T) (*T, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	out := *it
	f.setID(&out, fmt.Sprintf("new-%d", f.nextID))
	f.items = append(f.items, out)
	f.last = it
	return &out, nil
}

func (f *fakeRepo[T]) update(id string, it *T) (*T, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.items, func(x T) bool { return x.EntityID() == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	out := *it
	f.setID(&out, id)
	f.items[i] = out
	f.last = it
	return &out, nil
}

func (f *fakeRepo[T]) patch(id string, fn func(*T)) (*T, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := slices.IndexFunc(f.items, func(x T) bool { return x.EntityID() == id })
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	fn(&f.items[i])
	out := f.items[i]
	return &out, nil
}

func (f *fakeRepo[T]) remove(id string) error {
	if err := f.begin(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.items)
	f.items = slices.DeleteFunc(f.items, func(x T) bool { return x.EntityID() == id })
	if len(f.items) == n {
		return fmt.Errorf("%s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ── personas ─────────────────────────────────────────────────────────────────

type fakePersonaRepo struct{ *fakeRepo[entity.Persona] }

func newFakePersonaRepo(items ...entity.Persona) *fakePersonaRepo {
	return &fakePersonaRepo{newFakeRepo(func(p *entity.Persona, id string) { p.ID = id }, items...)}
}

func (f *fakePersonaRepo) List(context.Context) ([]entity.Persona, error) { return f.list(nil) }
func (f *fakePersonaRepo) ListByTipo(_ context.Context, tipo entity.TipoPersona) ([]entity.Persona, error) {
	return f.list(func(p entity.Persona) bool { return p.Tipo == tipo })
}
func (f *fakePersonaRepo) GetByID(_ context.Context, id string) (*entity.Persona, error) {
	return f.get(id)
}
func (f *fakePersonaRepo) Create(_ context.Context, p *entity.Persona) (*entity.Persona, error) {
	return f.create(p)
}
func (f *fakePersonaRepo) Update(_ context.Context, id string, p *entity.Persona) (*entity.Persona, error) {
	return f.update(id, p)
}
func (f *fakePersonaRepo) Delete(_ context.Context, id string) error { return f.remove(id) }

type fakeAuthRepo struct {
	registro *entity.Registro
}

func (f *fakeAuthRepo) Login(context.Context, string, string) (*entity.AuthToken, error) {
	return nil, domain.ErrUnauthorized
}

func (f *fakeAuthRepo) Register(_ context.Context, in *entity.Registro) (*entity.Persona, error) {
	f.registro = in
	p := in.Persona
	p.ID = "prov-1"
	return &p, nil
}

// ── vehículos ────────────────────────────────────────────────────────────────

type fakeVehiculoRepo struct{ *fakeRepo[entity.Vehiculo] }

func newFakeVehiculoRepo(items ...entity.Vehiculo) *fakeVehiculoRepo {
	return &fakeVehiculoRepo{newFakeRepo(func(v *entity.Vehiculo, id string) { v.ID = id }, items...)}
}

func (f *fakeVehiculoRepo) List(context.Context) ([]entity.Vehiculo, error) { return f.list(nil) }
func (f *fakeVehiculoRepo) GetByID(_ context.Context, id string) (*entity.Vehiculo, error) {
	return f.get(id)
}
func (f *fakeVehiculoRepo) Create(_ context.Context, v *entity.Vehiculo) (*entity.Vehiculo, error) {
	return f.create(v)
}
func (f *fakeVehiculoRepo) Update(_ context.Context, id string, v *entity.Vehiculo) (*entity.Vehiculo, error) {
	return f.update(id, v)
}
func (f *fakeVehiculoRepo) Delete(_ context.Context, id string) error { return f.remove(id) }

// ── productos ────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	*fakeRepo[entity.Producto]
	archivados []string
}

func newFakeProductoRepo(items ...entity.Producto) *fakeProductoRepo {
	return &fakeProductoRepo{fakeRepo: newFakeRepo(func(p *entity.Producto, id string) { p.ID = id }, items...)}
}

func (f *fakeProductoRepo) List(context.Context) ([]entity.Producto, error) { return f.list(nil) }
func (f *fakeProductoRepo) ListLowStock(context.Context) ([]entity.Producto, error) {
	return f.list(entity.Producto.StockBajo)
}
func (f *fakeProductoRepo) GetByID(_ context.Context, id string) (*entity.Producto, error) {
	return f.get(id)
}
func (f *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) (*entity.Producto, error) {
	return f.create(p)
}
func (f *fakeProductoRepo) Update(_ context.Context, id string, p *entity.Producto) (*entity.Producto, error) {
	return f.update(id, p)
}
func (f *fakeProductoRepo) SoftDelete(_ context.Context, id string) error {
	if err := f.remove(id); err != nil {
		return err
	}
	f.archivados = append(f.archivados, id)
	return nil
}
func (f *fakeProductoRepo) HardDelete(_ context.Context, id string) error { return f.remove(id) }

// ── tareas ───────────────────────────────────────────────────────────────────

type fakeTareaRepo struct{ *fakeRepo[entity.Tarea] }

func newFakeTareaRepo(items ...entity.Tarea) *fakeTareaRepo {
	return &fakeTareaRepo{newFakeRepo(func(t *entity.Tarea, id string) { t.ID = id }, items...)}
}

func (f *fakeTareaRepo) List(context.Context) ([]entity.Tarea, error) { return f.list(nil) }
func (f *fakeTareaRepo) GetByID(_ context.Context, id string) (*entity.Tarea, error) {
	return f.get(id)
}
func (f *fakeTareaRepo) Create(_ context.Context, t *entity.Tarea) (*entity.Tarea, error) {
	return f.create(t)
}
func (f *fakeTareaRepo) Update(_ context.Context, id string, t *entity.Tarea) (*entity.Tarea, error) {
	return f.update(id, t)
}
func (f *fakeTareaRepo) SetActive(_ context.Context, id string, active bool) (*entity.Tarea, error) {
	return f.patch(id, func(t *entity.Tarea) { t.IsActive = &active })
}
func (f *fakeTareaRepo) Delete(_ context.Context, id string) error { return f.remove(id) }

// ── trabajos ─────────────────────────────────────────────────────────────────

type fakeTrabajoRepo struct {
	*fakeRepo[entity.Trabajo]
	estadoErr   error
	estadoCalls []entity.Estado
}

func newFakeTrabajoRepo(items ...entity.Trabajo) *fakeTrabajoRepo {
	return &fakeTrabajoRepo{fakeRepo: newFakeRepo(func(t *entity.Trabajo, id string) { t.ID = id }, items...)}
}

func (f *fakeTrabajoRepo) List(context.Context) ([]entity.Trabajo, error) { return f.list(nil) }
func (f *fakeTrabajoRepo) ListByEstado(_ context.Context, e entity.Estado) ([]entity.Trabajo, error) {
	return f.list(func(t entity.Trabajo) bool { return t.Estado == e })
}
func (f *fakeTrabajoRepo) GetByID(_ context.Context, id string) (*entity.Trabajo, error) {
	return f.get(id)
}
func (f *fakeTrabajoRepo) Create(_ context.Context, t *entity.Trabajo) (*entity.Trabajo, error) {
	return f.create(t)
}
func (f *fakeTrabajoRepo) Update(_ context.Context, id string, t *entity.Trabajo) (*entity.Trabajo, error) {
	return f.update(id, t)
}
func (f *fakeTrabajoRepo) UpdateEstado(_ context.Context, id string, e entity.Estado) (*entity.Trabajo, error) {
	f.estadoCalls = append(f.estadoCalls, e)
	if f.estadoErr != nil {
		return nil, f.estadoErr
	}
	return f.patch(id, func(t *entity.Trabajo) { t.Estado = e })
}
func (f *fakeTrabajoRepo) SoftDelete(_ context.Context, id string) error { return f.remove(id) }
func (f *fakeTrabajoRepo) HardDelete(_ context.Context, id string) error { return f.remove(id) }
