package dto

// ErrorResponse cuerpo de error HTTP. Todos los errores de la API usan esta
// forma: {error, detail, success:false}.
type ErrorResponse struct {
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
	Success bool   `json:"success"`
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
