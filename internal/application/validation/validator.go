// Package validation valida los formularios antes de llamar a la API del taller.
// Usa go-playground/validator con reglas propias (dni, cuit, patente, telefono)
// y devuelve domain.ValidationError con mensajes por campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/detailing-dashboard/internal/domain"
)

var (
	dniRe      = regexp.MustCompile(`^\d{7,8}$`)
	cuitRe     = regexp.MustCompile(`^\d{11}$`)
	patenteRe  = regexp.MustCompile(`^[A-Z]{3}\d{3}$|^[A-Z]{2}\d{3}[A-Z]{2}$`)
	telefonoRe = regexp.MustCompile(`^\d{10,15}$`)
)

// Validator envuelve validator.Validate con las reglas del taller registradas.
type Validator struct {
	v *validator.Validate
}

// New construye el validador. Los nombres de campo salen del tag json.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("dni", func(fl validator.FieldLevel) bool {
		return ValidDNI(fl.Field().String())
	})
	_ = v.RegisterValidation("cuit", func(fl validator.FieldLevel) bool {
		return ValidCUIT(fl.Field().String())
	})
	_ = v.RegisterValidation("patente", func(fl validator.FieldLevel) bool {
		return ValidPatente(fl.Field().String())
	})
	_ = v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		return telefonoRe.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// decimalValue expone decimal.Decimal como float64 para gte/lte/min.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// ValidDNI 7 u 8 dígitos.
func ValidDNI(s string) bool { return dniRe.MatchString(s) }

// ValidCUIT 11 dígitos una vez quitados los guiones (20-12345678-9).
func ValidCUIT(s string) bool { return cuitRe.MatchString(strings.ReplaceAll(s, "-", "")) }

// ValidPatente formato viejo (ABC123) o Mercosur (AB123CD), en mayúsculas.
func ValidPatente(s string) bool { return patenteRe.MatchString(s) }

// NormalizePatente recorta y pasa a mayúsculas.
func NormalizePatente(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Struct valida s. Devuelve nil o *domain.ValidationError (errors.Is(err, domain.ErrInvalidInput)).
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	out := &domain.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		key := fieldKey(fe)
		if _, seen := out.Fields[key]; !seen {
			out.Fields[key] = message(fe)
		}
	}
	return out
}

// fieldKey quita el nombre del struct raíz: "TrabajoRequest.tareas[0].tarea" -> "tareas[0].tarea".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
