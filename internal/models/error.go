package models

import "fmt"

// NotFoundError indica que una búsqueda por llave primaria o por código
// normalizado no produjo ninguna fila. Se traduce a HTTP 404.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s con ID %s no encontrado", e.Entity, e.Key)
}

// NewNotFoundError crea un NotFoundError con la llave formateada.
func NewNotFoundError(entity string, key interface{}) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: fmt.Sprintf("%v", key)}
}

// ValidationError indica parámetros de petición fuera de rango. Se rechaza
// antes de ejecutar cualquier consulta y se traduce a HTTP 422.
type ValidationError struct {
	Field string
	Issue string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parámetro %s inválido: %s", e.Field, e.Issue)
}

// QueryError envuelve un error reportado por la base de datos al ejecutar una
// consulta. Se traduce a HTTP 500 y nunca se reintenta.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("error de consulta en %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// ConnectionError indica que la base de datos no es alcanzable. Se traduce a
// HTTP 500 y nunca se reintenta.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("error de conexión a la base de datos: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
