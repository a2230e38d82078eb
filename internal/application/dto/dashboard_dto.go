package dto

// DashboardResponse métricas del panel principal. Una métrica que no se pudo obtener vale 0.
type DashboardResponse struct {
	TotalClientes      int    `json:"total_clientes"`
	TrabajosPendientes int    `json:"trabajos_pendientes"`
	ProductosStockBajo int    `json:"productos_stock_bajo"`
	Alerta             string `json:"alerta"`
}

// SeccionResponse entrada del menú lateral.
type SeccionResponse struct {
	Nombre string `json:"nombre"`
	Path   string `json:"path"`
}

// NavegacionResponse secciones visibles para el usuario.
type NavegacionResponse struct {
	Tipo      string            `json:"tipo"`
	Secciones []SeccionResponse `json:"secciones"`
}
