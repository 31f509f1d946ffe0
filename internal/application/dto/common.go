package dto

import "sort"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError detalle de validación por campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ListQuery parámetros de listado (query string). Todos opcionales.
type ListQuery struct {
	Limit     *int   `query:"limit" validate:"omitempty,gt=0"`
	OrderBy   string `query:"order_by"`
	Ascending *bool  `query:"ascending"`
}

// nullable es lo mínimo que necesitamos de optional.Value para detectar null explícito.
type nullable interface {
	IsNull() bool
}

// nullFields devuelve, ordenadas, las claves que llegaron como null.
func nullFields(fields map[string]nullable) []string {
	var out []string
	for name, f := range fields {
		if f.IsNull() {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
