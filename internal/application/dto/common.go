package dto

// FieldError detalle de validación de un campo. Las validaciones acumulan
// todos los campos fallidos, no cortan en el primero.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination metadatos de página en listados.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPagination calcula los metadatos a partir del total y la página pedida.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}
