package dto

// ErrorResponse cuerpo de error HTTP. Message es el texto para el banner del formulario;
// Fields trae errores por campo y Details las líneas de stock insuficiente.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Details []string          `json:"details,omitempty"`
}

// ListQuery filtros comunes de los listados (búsqueda por texto).
type ListQuery struct {
	Search string `query:"search"`
}
