package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/domain"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr.Fields
}

func validPersona() dto.PersonaRequest {
	return dto.PersonaRequest{Nombre: "Ana", Apellido: "Pérez", DNI: "12345678", Email: "ana@mail.com"}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reglas propias
// ─────────────────────────────────────────────────────────────────────────────

func TestReglas(t *testing.T) {
	assert.True(t, ValidDNI("1234567"))
	assert.True(t, ValidDNI("12345678"))
	assert.False(t, ValidDNI("123456"))
	assert.False(t, ValidDNI("123456789"))
	assert.False(t, ValidDNI("12.345.678"))

	assert.True(t, ValidCUIT("20-12345678-9"))
	assert.True(t, ValidCUIT("20123456789"))
	assert.False(t, ValidCUIT("20-1234567-9"))

	assert.True(t, ValidPatente("ABC123"))
	assert.True(t, ValidPatente("AB123CD"))
	assert.False(t, ValidPatente("abc123"), "la patente se normaliza antes de validar")
	assert.False(t, ValidPatente("A1B2C3"))
	assert.Equal(t, "AB123CD", NormalizePatente(" ab123cd "))
}

// ─────────────────────────────────────────────────────────────────────────────
// Formularios
// ─────────────────────────────────────────────────────────────────────────────

func TestPersona_Valida(t *testing.T) {
	v := New()
	in := validPersona()
	in.CUIT = "20-12345678-9"
	assert.NoError(t, v.Struct(in))
}

func TestPersona_MensajesPorCampo(t *testing.T) {
	v := New()
	in := validPersona()
	in.DNI = "123"
	in.Email = "no-es-email"
	in.CUIT = "123"

	f := fields(t, v.Struct(in))
	assert.Equal(t, "El DNI debe tener 7 u 8 dígitos", f["dni"])
	assert.Equal(t, "Debe ser un email válido", f["email"])
	assert.Equal(t, "El CUIT debe tener 11 dígitos", f["cuit"])
	assert.NotContains(t, f, "nombre")
}

func TestRegister_MinimosYTelefono(t *testing.T) {
	v := New()
	f := fields(t, v.Struct(dto.RegisterRequest{
		Email: "a@b.co", Password: "12345", Nombre: "A", Apellido: "Bo", DNI: "1234567", Telefono: "123",
	}))
	assert.Equal(t, "La contraseña debe tener al menos 6 caracteres", f["password"])
	assert.Equal(t, "El nombre debe tener al menos 2 caracteres", f["nombre"])
	assert.Equal(t, "El teléfono debe tener entre 10 y 15 dígitos", f["telefono"])
	assert.NotContains(t, f, "apellido")
}

func TestVehiculo_PatenteOpcional(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(dto.VehiculoRequest{Cliente: "c1", Marca: "Ford", Modelo: "Ka"}))

	f := fields(t, v.Struct(dto.VehiculoRequest{Cliente: "c1", Marca: "Ford", Modelo: "Ka", Patente: "XX"}))
	assert.Equal(t, "Formato de patente inválido (ej: ABC123 o AB123CD)", f["patente"])
}

func TestProducto_ValoresNoNegativos(t *testing.T) {
	v := New()
	neg := -1
	f := fields(t, v.Struct(dto.ProductoRequest{
		Nombre: "Cera", PrecioVenta: decimal.NewFromInt(-1), StockActual: -2, StockMinimo: &neg,
	}))
	assert.Equal(t, "El proveedor es requerido", f["proveedor"])
	assert.Equal(t, "Debe ser mayor o igual a 0", f["precio_venta"])
	assert.Equal(t, "Debe ser mayor o igual a 0", f["stock_actual"])
	assert.Equal(t, "Debe ser mayor o igual a 0", f["stock_minimo"])
}

func TestTarea_PrecioYTiempo(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(dto.TareaRequest{Descripcion: "Lavado", Precio: decimal.RequireFromString("0.01"), TiempoEstimado: 1}))

	f := fields(t, v.Struct(dto.TareaRequest{Descripcion: "Lavado", Precio: decimal.Zero, TiempoEstimado: 0}))
	assert.Contains(t, f, "precio")
	assert.Contains(t, f, "tiempo_estimado")
}

func TestTrabajo_AlMenosUnaTareaYCantidades(t *testing.T) {
	v := New()
	f := fields(t, v.Struct(dto.TrabajoRequest{Vehiculo: "v1"}))
	assert.Equal(t, "Debe seleccionar al menos una tarea", f["tareas"])

	f = fields(t, v.Struct(dto.TrabajoRequest{
		Vehiculo:        "v1",
		Tareas:          []dto.TrabajoTareaInput{{Tarea: "t1", PrecioAlMomento: decimal.NewFromInt(100)}},
		ProductosUsados: []dto.TrabajoProductoInput{{Producto: "p1", Cantidad: 0}},
	}))
	assert.Equal(t, "La cantidad debe ser al menos 1", f["productos_usados[0].cantidad"])
}

func TestCambioEstado_Oneof(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(dto.CambioEstadoRequest{Estado: "En Proceso"}))
	f := fields(t, v.Struct(dto.CambioEstadoRequest{Estado: "Cancelado"}))
	assert.Equal(t, "Estado de trabajo inválido", f["estado"])
}
