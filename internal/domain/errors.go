package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUpstream          = errors.New("error en la API del taller")
	ErrSessionNotFound   = errors.New("sesión no encontrada")
)

// Ciclo de vida de trabajos y formulario de alta.
var (
	ErrEstadoInvalido           = errors.New("estado de trabajo inválido")
	ErrEstadoRetroceso          = errors.New("No se puede retroceder el estado de un trabajo")
	ErrConfirmacionNoEncontrada = errors.New("confirmación no encontrada o vencida")
	ErrBorradorNoIniciado       = errors.New("no hay una orden de trabajo en edición")
)

// ValidationError agrupa mensajes de validación por campo.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un error con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		for _, m := range e.Fields {
			return m
		}
	}
	keys := slices.Sorted(maps.Keys(e.Fields))
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
