package models

import "fmt"

// Límites de paginación. Coinciden en el camino de conteo y el camino de
// datos: un skip más allá del total produce una página vacía con el total
// correcto, nunca un error.
const (
	DefaultSkip  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams son los parámetros de ventana de un listado.
type PageParams struct {
	Skip  int
	Limit int
}

// DefaultPageParams retorna la ventana por defecto (skip=0, limit=10).
func DefaultPageParams() PageParams {
	return PageParams{Skip: DefaultSkip, Limit: DefaultLimit}
}

// Validate rechaza ventanas fuera de rango antes de ejecutar cualquier
// consulta.
func (p PageParams) Validate() error {
	if p.Skip < 0 {
		return &ValidationError{Field: "skip", Issue: fmt.Sprintf("debe ser >= 0, recibido %d", p.Skip)}
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return &ValidationError{Field: "limit", Issue: fmt.Sprintf("debe estar entre 1 y %d, recibido %d", MaxLimit, p.Limit)}
	}
	return nil
}

// HasMore indica si quedan páginas después de la actual.
func (p PageParams) HasMore(pageLen, total int) bool {
	return p.Skip+pageLen < total
}
