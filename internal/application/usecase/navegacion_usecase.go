package usecase

import (
	"slices"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// Secciones del dashboard.
const (
	SeccionDashboard     = "dashboard"
	SeccionClientes      = "clientes"
	SeccionVehiculos     = "vehiculos"
	SeccionTrabajos      = "trabajos"
	SeccionProductos     = "productos"
	SeccionServicios     = "servicios"
	SeccionProveedores   = "proveedores"
	SeccionConfiguracion = "config"
)

type seccion struct {
	id     string
	nombre string
	path   string
	roles  []entity.TipoPersona
}

var (
	todos      = []entity.TipoPersona{entity.TipoAdministrador, entity.TipoEmpleado, entity.TipoCliente, entity.TipoProveedor}
	personal   = []entity.TipoPersona{entity.TipoAdministrador, entity.TipoEmpleado}
	soloAdmins = []entity.TipoPersona{entity.TipoAdministrador}
)

// secciones en el orden del menú lateral.
var secciones = []seccion{
	{SeccionDashboard, "Dashboard", "/dashboard", todos},
	{SeccionClientes, "Clientes", "/dashboard/clientes", personal},
	{SeccionVehiculos, "Vehículos", "/dashboard/vehiculos", personal},
	{SeccionTrabajos, "Trabajos", "/dashboard/trabajos", personal},
	{SeccionProductos, "Productos", "/dashboard/productos", personal},
	{SeccionServicios, "Servicios", "/dashboard/servicios", personal},
	{SeccionProveedores, "Proveedores", "/dashboard/proveedores", soloAdmins},
	{SeccionConfiguracion, "Configuración", "/dashboard/config", soloAdmins},
}

// NavegacionService decide qué secciones ve cada tipo de persona.
// Es el único punto que conoce la matriz de permisos; el menú y el middleware la comparten.
type NavegacionService struct{}

// NewNavegacionService construye el servicio.
func NewNavegacionService() *NavegacionService {
	return &NavegacionService{}
}

// Navegacion devuelve el menú visible para el tipo, en orden.
func (s *NavegacionService) Navegacion(tipo entity.TipoPersona) *dto.NavegacionResponse {
	resp := &dto.NavegacionResponse{Tipo: string(tipo), Secciones: []dto.SeccionResponse{}}
	for _, sec := range secciones {
		if slices.Contains(sec.roles, tipo) {
			resp.Secciones = append(resp.Secciones, dto.SeccionResponse{Nombre: sec.nombre, Path: sec.path})
		}
	}
	return resp
}

// CanAccess informa si el tipo puede entrar a la sección. Una sección desconocida se niega.
func (s *NavegacionService) CanAccess(tipo entity.TipoPersona, seccionID string) bool {
	i := slices.IndexFunc(secciones, func(sec seccion) bool { return sec.id == seccionID })
	return i >= 0 && slices.Contains(secciones[i].roles, tipo)
}
