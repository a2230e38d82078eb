// Package trabajo contiene las reglas del ciclo de vida de una orden de trabajo:
// avance de estado, verificación de stock y cálculo de precio.
package trabajo

import (
	"fmt"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
	"github.com/jhoicas/detailing-dashboard/internal/domain/entity"
)

// ValidarTransicion decide si un trabajo puede pasar de actual a destino.
// cambia=false sin error cuando destino == actual (no hay nada que enviar).
// Un destino con índice menor se rechaza con domain.ErrEstadoRetroceso.
func ValidarTransicion(actual, destino entity.Estado) (cambia bool, err error) {
	if !destino.Valid() {
		return false, fmt.Errorf("%w: %q", domain.ErrEstadoInvalido, destino)
	}
	switch {
	case destino.Index() < actual.Index():
		return false, domain.ErrEstadoRetroceso
	case destino == actual:
		return false, nil
	}
	return true, nil
}

// RequiereStock indica si la transición entra (o salta) a Terminado desde un estado previo,
// en cuyo caso los productos usados deben tener stock suficiente.
func RequiereStock(actual, destino entity.Estado) bool {
	terminado := entity.EstadoTerminado.Index()
	return actual.Index() < terminado && destino.Index() >= terminado
}

// Siguiente devuelve el estado inmediato posterior; ok=false si ya está Entregado.
func Siguiente(actual entity.Estado) (entity.Estado, bool) {
	i := actual.Index()
	if i < 0 || i >= len(entity.Estados)-1 {
		return "", false
	}
	return entity.Estados[i+1], true
}

// MensajeConfirmacion es el texto que el usuario debe aceptar antes de aplicar el cambio.
func MensajeConfirmacion(actual, destino entity.Estado) string {
	return fmt.Sprintf("¿Cambiar estado de \"%s\" a \"%s\"?", actual, destino)
}
