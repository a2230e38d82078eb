package trabajo

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ─────────────────────────────────────────────────────────────────────────────
// Estado
// ─────────────────────────────────────────────────────────────────────────────

func TestValidarTransicion(t *testing.T) {
	cases := []struct {
		name    string
		actual  entity.Estado
		destino entity.Estado
		cambia  bool
		err     error
	}{
		{"avance simple", entity.EstadoPendiente, entity.EstadoEnProceso, true, nil},
		{"salto hacia adelante", entity.EstadoPendiente, entity.EstadoEntregado, true, nil},
		{"mismo estado", entity.EstadoTerminado, entity.EstadoTerminado, false, nil},
		{"retroceso", entity.EstadoEntregado, entity.EstadoEnProceso, false, domain.ErrEstadoRetroceso},
		{"retroceso un paso", entity.EstadoEnProceso, entity.EstadoPendiente, false, domain.ErrEstadoRetroceso},
		{"destino desconocido", entity.EstadoPendiente, entity.Estado("Cancelado"), false, domain.ErrEstadoInvalido},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cambia, err := ValidarTransicion(tc.actual, tc.destino)
			assert.Equal(t, tc.cambia, cambia)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestValidarTransicion_MensajeRetroceso(t *testing.T) {
	_, err := ValidarTransicion(entity.EstadoEntregado, entity.EstadoEnProceso)
	require.Error(t, err)
	assert.Equal(t, "No se puede retroceder el estado de un trabajo", err.Error())
}

func TestRequiereStock(t *testing.T) {
	assert.True(t, RequiereStock(entity.EstadoEnProceso, entity.EstadoTerminado))
	assert.True(t, RequiereStock(entity.EstadoPendiente, entity.EstadoEntregado), "saltar Terminado también descuenta stock")
	assert.False(t, RequiereStock(entity.EstadoPendiente, entity.EstadoEnProceso))
	assert.False(t, RequiereStock(entity.EstadoTerminado, entity.EstadoEntregado))
}

func TestSiguiente(t *testing.T) {
	s, ok := Siguiente(entity.EstadoPendiente)
	require.True(t, ok)
	assert.Equal(t, entity.EstadoEnProceso, s)

	_, ok = Siguiente(entity.EstadoEntregado)
	assert.False(t, ok)
}

func TestMensajeConfirmacion(t *testing.T) {
	assert.Equal(t, `¿Cambiar estado de "En Proceso" a "Terminado"?`,
		MensajeConfirmacion(entity.EstadoEnProceso, entity.EstadoTerminado))
}

// ─────────────────────────────────────────────────────────────────────────────
// Stock
// ─────────────────────────────────────────────────────────────────────────────

func linea(id, nombre string, stock, cantidad int) entity.ProductoLinea {
	return entity.ProductoLinea{
		Producto: entity.Populated(entity.Producto{ID: id, Nombre: nombre, StockActual: stock}),
		Cantidad: cantidad,
	}
}

func TestVerificarStock_ListaTodasLasLineasEnOrden(t *testing.T) {
	err := VerificarStock([]entity.ProductoLinea{
		linea("p1", "Cera", 1, 3),
		linea("p2", "Shampoo", 10, 2),
		linea("p3", "Microfibra", 0, 1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var serr *StockError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, []string{"Cera: Disponible 1, Requerido 3", "Microfibra: Disponible 0, Requerido 1"}, serr.Detalles())
	assert.Contains(t, err.Error(), "No se puede finalizar el trabajo. Stock insuficiente:")
}

func TestVerificarStock_Suficiente(t *testing.T) {
	assert.NoError(t, VerificarStock([]entity.ProductoLinea{linea("p1", "Cera", 3, 3)}))
	assert.NoError(t, VerificarStock(nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// Precio
// ─────────────────────────────────────────────────────────────────────────────

func TestCalcular_ProductoNoPobladoCuentaCero(t *testing.T) {
	r := Calcular(
		[]entity.TareaLinea{{Tarea: entity.Reference[entity.Tarea]("t1"), PrecioAlMomento: dec("100")}},
		[]entity.ProductoLinea{{Producto: entity.Reference[entity.Producto]("p1"), Cantidad: 2}},
	)
	assert.True(t, r.Total.Equal(dec("100")))
	assert.True(t, r.SubtotalProductos.IsZero())
}

func TestCalcular_PrecioTareaCongeladoProductoVivo(t *testing.T) {
	tarea := entity.Tarea{ID: "t1", Precio: dec("100")}
	tl := entity.TareaLinea{Tarea: entity.Populated(tarea), PrecioAlMomento: dec("80")}
	pl := entity.ProductoLinea{Producto: entity.Populated(entity.Producto{ID: "p1", PrecioVenta: dec("12.5")}), Cantidad: 2}

	r := Calcular([]entity.TareaLinea{tl}, []entity.ProductoLinea{pl})
	assert.True(t, r.SubtotalTareas.Equal(dec("80")), "la tarea usa el precio del momento, no el del catálogo")
	assert.True(t, r.SubtotalProductos.Equal(dec("25")))
	assert.True(t, r.Total.Equal(dec("105")))
}

// ─────────────────────────────────────────────────────────────────────────────
// Borrador
// ─────────────────────────────────────────────────────────────────────────────

func catalogo() Catalogo {
	return Catalogo{
		Clientes: []entity.Persona{{ID: "c1", Nombre: "Ana", Tipo: entity.TipoCliente}},
		Tareas: []entity.Tarea{
			{ID: "t1", Descripcion: "Lavado", Precio: dec("100")},
			{ID: "t2", Descripcion: "Pulido", Precio: dec("200")},
		},
		Productos: []entity.Producto{
			{ID: "p1", Nombre: "Cera", PrecioVenta: dec("50"), StockActual: 5},
		},
	}
}

func TestBorrador_Total450(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	b.ElegirCliente("c1")
	b.VehiculoID = "v1"
	require.NoError(t, b.AgregarTarea("t1"))
	require.NoError(t, b.AgregarTarea("t2"))
	require.NoError(t, b.AgregarProducto("p1", 3))

	tr, err := b.Trabajo()
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPendiente, tr.Estado)
	assert.True(t, tr.PrecioTotal.Equal(dec("450")), "100 + 200 + 50*3, obtenido %s", tr.PrecioTotal)
	assert.Equal(t, "v1", tr.Vehiculo.ID())
	assert.False(t, tr.Tareas[0].Tarea.IsPopulated(), "las líneas se envían sólo con el ID")
	assert.False(t, tr.ProductosUsados[0].Producto.IsPopulated())
}

func TestBorrador_RecalculaAlQuitar(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	require.NoError(t, b.AgregarTarea("t1"))
	require.NoError(t, b.AgregarTarea("t2"))
	require.NoError(t, b.AgregarProducto("p1", 2))
	assert.True(t, b.Resumen().Total.Equal(dec("400")))

	b.QuitarTarea("t1")
	b.QuitarProducto("p1")
	assert.True(t, b.Resumen().Total.Equal(dec("200")))
}

func TestBorrador_NoDuplica(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	require.NoError(t, b.AgregarTarea("t1"))
	assert.ErrorIs(t, b.AgregarTarea("t1"), domain.ErrDuplicate)

	require.NoError(t, b.AgregarProducto("p1", 1))
	assert.ErrorIs(t, b.AgregarProducto("p1", 1), domain.ErrDuplicate)
	assert.Len(t, b.Tareas, 1)
	assert.Len(t, b.Productos, 1)
}

func TestBorrador_StockDeLaFoto(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	err := b.AgregarProducto("p1", 6)
	require.Error(t, err)
	assert.Equal(t, "Stock insuficiente. Disponible: 5", err.Error())
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, b.Productos)
}

func TestBorrador_CantidadMinima(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	assert.ErrorIs(t, b.AgregarProducto("p1", 0), domain.ErrInvalidInput)
}

func TestBorrador_Desconocidos(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	assert.ErrorIs(t, b.AgregarTarea("nope"), domain.ErrNotFound)
	assert.ErrorIs(t, b.AgregarProducto("nope", 1), domain.ErrNotFound)
}

func TestBorrador_ValidaVehiculoYTareas(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	_, err := b.Trabajo()
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Debe seleccionar un vehículo", verr.Fields["vehiculo"])
	assert.Equal(t, "Debe seleccionar al menos una tarea", verr.Fields["tareas"])
}

func TestBorrador_CambiarClienteLimpiaVehiculo(t *testing.T) {
	b := NuevoBorrador("b1", catalogo())
	b.ElegirCliente("c1")
	b.VehiculoID = "v1"
	b.ElegirCliente("c1")
	assert.Equal(t, "v1", b.VehiculoID)
	b.ElegirCliente("c2")
	assert.Empty(t, b.VehiculoID)
}

func TestReferencia(t *testing.T) {
	assert.Equal(t, "Orden #0000BEEF", Referencia("64f1c0ffee0000000000beef"))
	assert.Equal(t, "Orden #AB12", Referencia("ab12"))
}
