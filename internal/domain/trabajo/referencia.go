package trabajo

import "strings"

// Referencia es el número corto de orden que ve el cliente: los últimos 8 caracteres del ID en mayúsculas.
func Referencia(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return "Orden #" + strings.ToUpper(id)
}
