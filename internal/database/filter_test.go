package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSinPredicados(t *testing.T) {
	var f Filter

	assert.Equal(t, "", f.Where())
	assert.Empty(t, f.Args())
}

func TestFilterUnPredicado(t *testing.T) {
	var f Filter
	f.Equals("pr.id_pais", "MXN")

	assert.Equal(t, " WHERE pr.id_pais = $1", f.Where())
	assert.Equal(t, []interface{}{"MXN"}, f.Args())
}

func TestFilterPredicadosEnOrden(t *testing.T) {
	var f Filter
	f.Equals("pr.ambiente", "sandbox")
	f.Equals("pr.id_pais", "MXN")

	assert.Equal(t, " WHERE pr.ambiente = $1 AND pr.id_pais = $2", f.Where())
	assert.Equal(t, []interface{}{"sandbox", "MXN"}, f.Args())
}

func TestFilterWindowSinPredicados(t *testing.T) {
	var f Filter
	clause, args := f.Window(10, 0)

	assert.Equal(t, " LIMIT $1 OFFSET $2", clause)
	assert.Equal(t, []interface{}{10, 0}, args)
}

func TestFilterWindowContinuaNumeracion(t *testing.T) {
	var f Filter
	f.Equals("pr.ambiente", "production")
	clause, args := f.Window(25, 50)

	assert.Equal(t, " LIMIT $2 OFFSET $3", clause)
	assert.Equal(t, []interface{}{"production", 25, 50}, args)
}

func TestFilterWindowNoMutaArgs(t *testing.T) {
	var f Filter
	f.Equals("pr.id_pais", "COP")
	f.Window(10, 0)

	// el conteo reutiliza Args() después de renderizar la ventana
	assert.Equal(t, []interface{}{"COP"}, f.Args())
}
