// Package analytics contiene el caso de uso del panel principal del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/jhoicas/detailing-dashboard/internal/application/dto"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
	"github.com/jhoicas/detailing-dashboard/internal/domain/repository"
	"github.com/jhoicas/detailing-dashboard/pkg/logger"
)

// DashboardUseCase arma las métricas del panel principal.
//
// Fuente de datos: la API del taller, tres consultas independientes.
// Una consulta que falla se registra y su métrica vale 0; el panel se responde igual.
type DashboardUseCase struct {
	personaRepo  repository.PersonaRepository
	trabajoRepo  repository.TrabajoRepository
	productoRepo repository.ProductoRepository
	log          *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	personaRepo repository.PersonaRepository,
	trabajoRepo repository.TrabajoRepository,
	productoRepo repository.ProductoRepository,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		personaRepo:  personaRepo,
		trabajoRepo:  trabajoRepo,
		productoRepo: productoRepo,
		log:          log.Component("dashboard"),
	}
}

// GetSummary consulta en paralelo:
//  1. GET /persona/tipo/Cliente      → TotalClientes
//  2. GET /trabajo/estado/Pendiente  → TrabajosPendientes
//  3. GET /producto/low-stock        → ProductosStockBajo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) *dto.DashboardResponse {
	var (
		wg                          conc.WaitGroup
		clientes, pendientes, stock int
	)

	wg.Go(func() {
		items, err := uc.personaRepo.ListByTipo(ctx, entity.TipoCliente)
		clientes = uc.count(len(items), err, "clientes")
	})
	wg.Go(func() {
		items, err := uc.trabajoRepo.ListByEstado(ctx, entity.EstadoPendiente)
		pendientes = uc.count(len(items), err, "trabajos_pendientes")
	})
	wg.Go(func() {
		items, err := uc.productoRepo.ListLowStock(ctx)
		stock = uc.count(len(items), err, "productos_stock_bajo")
	})
	wg.Wait()

	return &dto.DashboardResponse{
		TotalClientes:      clientes,
		TrabajosPendientes: pendientes,
		ProductosStockBajo: stock,
		Alerta:             Alerta(stock),
	}
}

func (uc *DashboardUseCase) count(n int, err error, metric string) int {
	if err != nil {
		uc.log.Warn().Err(err).Str("metric", metric).Msg("métrica no disponible")
		return 0
	}
	return n
}

// Alerta texto de reabastecimiento del panel.
func Alerta(stockBajo int) string {
	if stockBajo <= 0 {
		return "No hay alertas en este momento"
	}
	return fmt.Sprintf("%d producto(s) necesita(n) reabastecimiento", stockBajo)
}
