package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Mensajes de los formularios del dashboard, por campo y regla.
var fieldMessages = map[string]map[string]string{
	"email": {
		"required": "El email es requerido",
		"email":    "Debe ser un email válido",
	},
	"password": {
		"required": "La contraseña es requerida",
		"min":      "La contraseña debe tener al menos 6 caracteres",
	},
	"nombre": {
		"required": "El nombre es requerido",
		"min":      "El nombre debe tener al menos 2 caracteres",
	},
	"apellido": {
		"required": "El apellido es requerido",
		"min":      "El apellido debe tener al menos 2 caracteres",
	},
	"dni": {
		"required": "El DNI es requerido",
		"dni":      "El DNI debe tener 7 u 8 dígitos",
	},
	"cuit":     {"cuit": "El CUIT debe tener 11 dígitos"},
	"telefono": {"telefono": "El teléfono debe tener entre 10 y 15 dígitos"},
	"tipo":     {"oneof": "Tipo de persona inválido"},
	"cliente":  {"required": "Debe seleccionar un cliente"},
	"marca":    {"required": "La marca es requerida"},
	"modelo":   {"required": "El modelo es requerido"},
	"patente":  {"patente": "Formato de patente inválido (ej: ABC123 o AB123CD)"},
	"proveedor": {
		"required": "El proveedor es requerido",
	},
	"precio_venta": {"gte": "Debe ser mayor o igual a 0"},
	"stock_actual": {"gte": "Debe ser mayor o igual a 0"},
	"stock_minimo": {"gte": "Debe ser mayor o igual a 0"},
	"descripcion":  {"required": "La descripción es requerida"},
	"precio": {
		"gte": "El precio debe ser mayor a 0",
	},
	"tiempo_estimado": {"gte": "El tiempo estimado debe ser al menos 1 minuto"},
	"vehiculo":        {"required": "El vehículo es requerido"},
	"tareas": {
		"required": "Debe seleccionar al menos una tarea",
		"min":      "Debe seleccionar al menos una tarea",
	},
	"cantidad":          {"gte": "La cantidad debe ser al menos 1"},
	"precio_al_momento": {"gte": "Debe ser mayor o igual a 0"},
	"estado":            {"required": "El estado es requerido", "oneof": "Estado de trabajo inválido"},
	"activo":            {"required": "El campo activo es requerido"},
}

func message(fe validator.FieldError) string {
	if byTag, ok := fieldMessages[fe.Field()]; ok {
		if m, ok := byTag[fe.Tag()]; ok {
			return m
		}
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", fe.Field())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s elementos o caracteres", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	case "email":
		return "Debe ser un email válido"
	}
	return fmt.Sprintf("El campo %s es inválido", fe.Field())
}
