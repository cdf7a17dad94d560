package dto

// GenericResponse envoltorio uniforme de las respuestas HTTP.
// Errors siempre viaja (vacío en éxito) y Data va en null en error.
type GenericResponse struct {
	TraceID string   `json:"trace_id"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y el tope de página.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
