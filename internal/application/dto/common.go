package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPageLimit tamaño de página cuando no se indica limit.
const DefaultPageLimit = 20

// DefaultPage aplica el límite por defecto cuando Limit viene en cero (parámetro ausente).
func (p *PageRequest) DefaultPage() {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
}

// Validate aplica DefaultPage y valida rangos: limit 1..100, offset >= 0.
func (p *PageRequest) Validate() error {
	p.DefaultPage()
	return validate.Struct(p)
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
