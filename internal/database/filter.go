package database

import (
	"fmt"
	"strings"
)

// Filter acumula predicados opcionales como una lista ordenada de fragmentos
// SQL con su lista paralela de parámetros. La misma instancia alimenta la
// consulta de conteo y la de datos, de modo que el total reportado siempre
// corresponde a la página devuelta. Un filtro ausente no agrega predicado;
// nunca se pasa NULL como parámetro.
type Filter struct {
	clauses []string
	args    []interface{}
}

// Equals agrega el predicado column = valor. Los predicados se combinan
// siempre con AND.
func (f *Filter) Equals(column string, value interface{}) {
	f.clauses = append(f.clauses, fmt.Sprintf("%s = $%d", column, len(f.args)+1))
	f.args = append(f.args, value)
}

// Where renderiza la cláusula WHERE, o cadena vacía si no hay predicados.
func (f *Filter) Where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// Args retorna los parámetros en el mismo orden que los predicados.
func (f *Filter) Args() []interface{} {
	return f.args
}

// Window renderiza la cláusula LIMIT/OFFSET que sigue a los predicados y
// retorna los parámetros completos para la consulta de datos. La consulta de
// conteo usa Where()/Args() sin ventana.
func (f *Filter) Window(limit, skip int) (string, []interface{}) {
	n := len(f.args)
	clause := fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	args := make([]interface{}, 0, n+2)
	args = append(args, f.args...)
	args = append(args, limit, skip)
	return clause, args
}
