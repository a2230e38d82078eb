package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/validation"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

var ctx = context.Background()

func ptr[T any](v T) *T { return &v }

func clientesDePrueba() []entity.Persona {
	return []entity.Persona{
		{ID: "c1", Nombre: "José", Apellido: "Pérez", DNI: "12345678", Email: "jose@mail.com", Tipo: entity.TipoCliente},
		{ID: "c2", Nombre: "Ana", Apellido: "Gómez", DNI: "87654321", Email: "ana@mail.com", Tipo: entity.TipoCliente},
		{ID: "p1", Nombre: "Ceras SA", Apellido: "-", DNI: "11111111", Email: "ventas@ceras.com", Tipo: entity.TipoProveedor},
	}
}

// ── Clientes / proveedores ───────────────────────────────────────────────────

func TestClientes_ListFiltraSinAcentos(t *testing.T) {
	repo := newFakePersonaRepo(clientesDePrueba()...)
	uc := NewClienteUseCase(repo, validation.New())
	st := store.New()

	resp, err := uc.List(ctx, st, dto.ListQuery{Search: "perez"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "c1", resp.Items[0].ID)
	assert.Len(t, st.Clientes.State().Items, 2, "el estado guarda todos los clientes; el filtro se aplica al responder")
	assert.Equal(t, "perez", st.Clientes.State().Filters.Search)
}

func TestClientes_GetDeOtroTipoEsNotFound(t *testing.T) {
	uc := NewClienteUseCase(newFakePersonaRepo(clientesDePrueba()...), validation.New())
	_, err := uc.Get(ctx, store.New(), "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientes_CreateInvalidoNoLlamaALaAPI(t *testing.T) {
	repo := newFakePersonaRepo()
	uc := NewClienteUseCase(repo, validation.New())

	_, err := uc.Create(ctx, store.New(), dto.PersonaRequest{Nombre: "José", Apellido: "Pérez", DNI: "123", Email: "jose@mail.com"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "dni")
	assert.Equal(t, 0, repo.calls)
}

func TestClientes_CreateAgregaAlFinal(t *testing.T) {
	repo := newFakePersonaRepo(clientesDePrueba()...)
	uc := NewClienteUseCase(repo, validation.New())
	st := store.New()
	_, err := uc.List(ctx, st, dto.ListQuery{})
	require.NoError(t, err)

	p, err := uc.Create(ctx, st, dto.PersonaRequest{Nombre: " Luis ", Apellido: "Sosa", DNI: "2345678", Email: "luis@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.TipoCliente, repo.last.Tipo)
	assert.Equal(t, "Luis", repo.last.Nombre)

	items := st.Clientes.State().Items
	assert.Equal(t, p.ID, items[len(items)-1].ID)
}

func TestClientes_DeleteFallidoConservaLista(t *testing.T) {
	repo := newFakePersonaRepo(clientesDePrueba()...)
	uc := NewClienteUseCase(repo, validation.New())
	st := store.New()
	_, err := uc.List(ctx, st, dto.ListQuery{})
	require.NoError(t, err)

	repo.err = domain.ErrForbidden
	err = uc.Delete(ctx, st, "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, st.Clientes.State().Items, 2, "sin confirmación del servidor no se quita nada")
	assert.NotEmpty(t, st.Clientes.State().Error)

	repo.err = nil
	require.NoError(t, uc.Delete(ctx, st, "c1"))
	assert.Len(t, st.Clientes.State().Items, 1)
}

func TestProveedores_CreateUsaRegistroConPasswordPorDefecto(t *testing.T) {
	auth := &fakeAuthRepo{}
	uc := NewProveedorUseCase(newFakePersonaRepo(), auth, validation.New(), "defaultPassword123")
	st := store.New()

	p, err := uc.Create(ctx, st, dto.PersonaRequest{Nombre: "Ceras", Apellido: "SA", DNI: "1234567", Email: "c@ceras.com", CUIT: "30-12345678-9"})
	require.NoError(t, err)
	assert.Equal(t, "prov-1", p.ID)
	require.NotNil(t, auth.registro)
	assert.Equal(t, "defaultPassword123", auth.registro.Password)
	assert.Equal(t, entity.TipoProveedor, auth.registro.Tipo)
	assert.Len(t, st.Proveedores.State().Items, 1)
	assert.Empty(t, st.Clientes.State().Items, "los proveedores no se mezclan con los clientes")
}

func TestPersonas_ListByTipoInvalido(t *testing.T) {
	uc := NewPersonaUseCase(newFakePersonaRepo(clientesDePrueba()...))
	_, err := uc.ListByTipo(ctx, "Gerente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.ListByTipo(ctx, "Proveedor")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

// ── Vehículos ────────────────────────────────────────────────────────────────

func TestVehiculos_CreateNormalizaPatente(t *testing.T) {
	repo := newFakeVehiculoRepo()
	uc := NewVehiculoUseCase(repo, validation.New())

	v, err := uc.Create(ctx, store.New(), dto.VehiculoRequest{Cliente: "c1", Marca: "Ford", Modelo: "Focus", Patente: " ab123cd "})
	require.NoError(t, err)
	assert.Equal(t, "AB123CD", v.Patente)
	assert.Equal(t, "c1", repo.last.Cliente.ID())
}

func TestVehiculos_PatenteInvalida(t *testing.T) {
	repo := newFakeVehiculoRepo()
	uc := NewVehiculoUseCase(repo, validation.New())

	_, err := uc.Create(ctx, store.New(), dto.VehiculoRequest{Cliente: "c1", Marca: "Ford", Modelo: "Focus", Patente: "A1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, repo.calls)

	_, err = uc.Create(ctx, store.New(), dto.VehiculoRequest{Cliente: "c1", Marca: "Ford", Modelo: "Focus", Patente: "   "})
	require.NoError(t, err, "una patente en blanco es válida y no se envía")
	assert.Empty(t, repo.last.Patente)
}

func TestVehiculos_ListPorClienteYBusqueda(t *testing.T) {
	cliente := entity.Persona{ID: "c1", Nombre: "José", Apellido: "Pérez"}
	repo := newFakeVehiculoRepo(
		entity.Vehiculo{ID: "v1", Cliente: entity.Populated(cliente), Marca: "Ford", Modelo: "Focus", Patente: "ABC123"},
		entity.Vehiculo{ID: "v2", Cliente: entity.Reference[entity.Persona]("c2"), Marca: "Fiat", Modelo: "Uno"},
	)
	uc := NewVehiculoUseCase(repo, validation.New())

	resp, err := uc.List(ctx, store.New(), dto.VehiculoQuery{Search: "jose"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "v1", resp.Items[0].ID)

	resp, err = uc.List(ctx, store.New(), dto.VehiculoQuery{Cliente: "c2"})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "v2", resp.Items[0].ID)
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestProductos_StockMinimoPorDefecto(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := NewProductoUseCase(repo, validation.New())

	_, err := uc.Create(ctx, store.New(), dto.ProductoRequest{Nombre: "Cera", Proveedor: "p1", PrecioVenta: decimal.NewFromInt(50), StockActual: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, repo.last.StockMinimo)

	_, err = uc.Create(ctx, store.New(), dto.ProductoRequest{Nombre: "Shampoo", Proveedor: "p1", StockMinimo: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.last.StockMinimo, "un cero explícito se respeta")
}

func TestProductos_ValoresNegativos(t *testing.T) {
	repo := newFakeProductoRepo()
	uc := NewProductoUseCase(repo, validation.New())
	_, err := uc.Create(ctx, store.New(), dto.ProductoRequest{Nombre: "Cera", Proveedor: "p1", PrecioVenta: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, repo.calls)
}

func TestProductos_FiltroStockBajo(t *testing.T) {
	repo := newFakeProductoRepo(
		entity.Producto{ID: "p1", Nombre: "Cera", StockActual: 2, StockMinimo: 5},
		entity.Producto{ID: "p2", Nombre: "Shampoo", StockActual: 20, StockMinimo: 5},
	)
	uc := NewProductoUseCase(repo, validation.New())

	resp, err := uc.List(ctx, store.New(), dto.ProductoQuery{StockBajo: true})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p1", resp.Items[0].ID)
	assert.Equal(t, 1, resp.StockBajo)

	resp, err = uc.List(ctx, store.New(), dto.ProductoQuery{Search: "sham"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.StockBajo, "el conteo de stock bajo no depende de la búsqueda")
}

func TestProductos_ArchivarQuitaDelListado(t *testing.T) {
	repo := newFakeProductoRepo(entity.Producto{ID: "p1", Nombre: "Cera"})
	uc := NewProductoUseCase(repo, validation.New())
	st := store.New()
	_, err := uc.List(ctx, st, dto.ProductoQuery{})
	require.NoError(t, err)

	require.NoError(t, uc.Archive(ctx, st, "p1"))
	assert.Empty(t, st.Productos.State().Items)
	assert.Equal(t, []string{"p1"}, repo.archivados)
}

// ── Tareas ───────────────────────────────────────────────────────────────────

func TestTareas_PrecioYTiempo(t *testing.T) {
	repo := newFakeTareaRepo()
	uc := NewTareaUseCase(repo, validation.New())

	_, err := uc.Create(ctx, store.New(), dto.TareaRequest{Descripcion: "Lavado", Precio: decimal.Zero, TiempoEstimado: 0})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "precio")
	assert.Contains(t, verr.Fields, "tiempo_estimado")

	_, err = uc.Create(ctx, store.New(), dto.TareaRequest{Descripcion: "Lavado", Precio: decimal.RequireFromString("0.01"), TiempoEstimado: 1})
	assert.NoError(t, err)
}

func TestTareas_Desactivar(t *testing.T) {
	repo := newFakeTareaRepo(entity.Tarea{ID: "t1", Descripcion: "Lavado"})
	uc := NewTareaUseCase(repo, validation.New())
	st := store.New()
	_, err := uc.List(ctx, st, dto.ListQuery{})
	require.NoError(t, err)

	got, err := uc.SetActivo(ctx, st, "t1", dto.TareaActivoRequest{Activo: ptr(false)})
	require.NoError(t, err)
	assert.False(t, got.Activa())
	assert.False(t, st.Tareas.State().Items[0].Activa())

	_, err = uc.SetActivo(ctx, st, "t1", dto.TareaActivoRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Navegación ───────────────────────────────────────────────────────────────

func TestNavegacion_PorTipo(t *testing.T) {
	s := NewNavegacionService()

	admin := s.Navegacion(entity.TipoAdministrador)
	assert.Len(t, admin.Secciones, 8)

	empleado := s.Navegacion(entity.TipoEmpleado)
	assert.Len(t, empleado.Secciones, 6)
	for _, sec := range empleado.Secciones {
		assert.NotEqual(t, "Proveedores", sec.Nombre)
		assert.NotEqual(t, "Configuración", sec.Nombre)
	}

	cliente := s.Navegacion(entity.TipoCliente)
	require.Len(t, cliente.Secciones, 1)
	assert.Equal(t, "/dashboard", cliente.Secciones[0].Path)
}

func TestNavegacion_CanAccess(t *testing.T) {
	s := NewNavegacionService()
	assert.True(t, s.CanAccess(entity.TipoEmpleado, SeccionTrabajos))
	assert.False(t, s.CanAccess(entity.TipoEmpleado, SeccionProveedores))
	assert.True(t, s.CanAccess(entity.TipoAdministrador, SeccionConfiguracion))
	assert.False(t, s.CanAccess(entity.TipoProveedor, SeccionProductos))
	assert.False(t, s.CanAccess(entity.TipoAdministrador, "inexistente"))
}
