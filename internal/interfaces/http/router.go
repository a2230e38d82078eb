package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/detailing-dashboard/internal/application/analytics"
	"github.com/jhoicas/detailing-dashboard/internal/application/auth"
	"github.com/jhoicas/detailing-dashboard/internal/application/store"
	"github.com/jhoicas/detailing-dashboard/internal/application/usecase"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Stores      *store.Registry
	Navegacion  *usecase.NavegacionService
	DashboardUC *appanalytics.DashboardUseCase
	PersonaUC   *usecase.PersonaUseCase
	ClienteUC   *usecase.ClienteUseCase
	ProveedorUC *usecase.ProveedorUseCase
	VehiculoUC  *usecase.VehiculoUseCase
	ProductoUC  *usecase.ProductoUseCase
	TareaUC     *usecase.TareaUseCase
	TrabajoUC   *usecase.TrabajoUseCase
	BorradorUC  *usecase.BorradorUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token y sesión guardada)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC, deps.Stores))
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Navegacion)
	protected.Get("/navegacion", dashboardHandler.Navegacion)
	protected.Get("/dashboard", RequireSection(usecase.SeccionDashboard, deps.Navegacion), dashboardHandler.GetSummary)

	// Personas (solo administradores)
	personaHandler := NewPersonaHandler(deps.PersonaUC)
	personas := protected.Group("/personas", RequireRole(entity.TipoAdministrador))
	personas.Get("/", personaHandler.List)
	personas.Get("/tipo/:tipo", personaHandler.ListByTipo)

	clientes := protected.Group("/clientes", RequireSection(usecase.SeccionClientes, deps.Navegacion))
	registerPersonaTipo(clientes, NewClienteHandler(deps.ClienteUC))

	proveedores := protected.Group("/proveedores", RequireSection(usecase.SeccionProveedores, deps.Navegacion))
	registerPersonaTipo(proveedores, NewProveedorHandler(deps.ProveedorUC))

	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos := protected.Group("/vehiculos", RequireSection(usecase.SeccionVehiculos, deps.Navegacion))
	vehiculos.Get("/", vehiculoHandler.List)
	vehiculos.Post("/", vehiculoHandler.Create)
	vehiculos.Get("/:id", vehiculoHandler.GetByID)
	vehiculos.Patch("/:id", vehiculoHandler.Update)
	vehiculos.Delete("/:id", vehiculoHandler.Delete)

	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos := protected.Group("/productos", RequireSection(usecase.SeccionProductos, deps.Navegacion))
	productos.Get("/", productoHandler.List)
	productos.Get("/stock-bajo", productoHandler.ListLowStock)
	productos.Post("/", productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Patch("/:id/archivar", productoHandler.Archive)
	productos.Delete("/:id", productoHandler.Delete)

	// Servicios: en la API remota se llaman tareas.
	tareaHandler := NewTareaHandler(deps.TareaUC)
	tareas := protected.Group("/tareas", RequireSection(usecase.SeccionServicios, deps.Navegacion))
	tareas.Get("/", tareaHandler.List)
	tareas.Post("/", tareaHandler.Create)
	tareas.Get("/:id", tareaHandler.GetByID)
	tareas.Put("/:id", tareaHandler.Update)
	tareas.Patch("/:id/activo", tareaHandler.SetActivo)
	tareas.Delete("/:id", tareaHandler.Delete)

	trabajos := protected.Group("/trabajos", RequireSection(usecase.SeccionTrabajos, deps.Navegacion))

	// Borrador y confirmaciones antes de /:id para que no los capture el parámetro.
	borradorHandler := NewBorradorHandler(deps.BorradorUC)
	borrador := trabajos.Group("/borrador")
	borrador.Post("/", borradorHandler.Iniciar)
	borrador.Get("/", borradorHandler.Obtener)
	borrador.Put("/", borradorHandler.Actualizar)
	borrador.Delete("/", borradorHandler.Descartar)
	borrador.Get("/vehiculos", borradorHandler.Vehiculos)
	borrador.Post("/tareas", borradorHandler.AgregarTarea)
	borrador.Delete("/tareas/:tareaId", borradorHandler.QuitarTarea)
	borrador.Post("/productos", borradorHandler.AgregarProducto)
	borrador.Delete("/productos/:productoId", borradorHandler.QuitarProducto)
	borrador.Post("/enviar", borradorHandler.Enviar)

	trabajoHandler := NewTrabajoHandler(deps.TrabajoUC)
	trabajos.Post("/confirmaciones/:cid", trabajoHandler.Confirmar)
	trabajos.Delete("/confirmaciones/:cid", trabajoHandler.Cancelar)
	trabajos.Get("/", trabajoHandler.List)
	trabajos.Post("/", trabajoHandler.Create)
	trabajos.Get("/:id", trabajoHandler.GetByID)
	trabajos.Patch("/:id", trabajoHandler.Update)
	trabajos.Delete("/:id", trabajoHandler.Delete)
	trabajos.Patch("/:id/archivar", trabajoHandler.Archive)
	trabajos.Post("/:id/estado", trabajoHandler.SolicitarCambioEstado)
	trabajos.Get("/:id/historial", trabajoHandler.Historial)
	trabajos.Get("/:id/pdf", trabajoHandler.PDF)
}

func registerPersonaTipo(g fiber.Router, h *PersonaTipoHandler) {
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
