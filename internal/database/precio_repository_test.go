package database

import (
	"strings"
	"testing"
	"time"

	"github.com/splashmix/catalog-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Columnas de la parte SELECT de la consulta detallada, en orden.
func precioDetalleColumns() []string {
	head := precioDetalleSelect[:strings.Index(precioDetalleSelect, "FROM")]
	head = strings.TrimPrefix(strings.TrimSpace(head), "SELECT")
	return strings.Split(head, ",")
}

func TestScanPrecioDetalladoCubreTodasLasColumnas(t *testing.T) {
	captured := 0
	scan := func(dest ...interface{}) error {
		captured = len(dest)
		return nil
	}

	var precio models.PrecioDetallado
	require.NoError(t, scanPrecioDetallado(scan, &precio))
	assert.Equal(t, len(precioDetalleColumns()), captured)
}

func TestScanPrecioDetalladoReferenciasColgantes(t *testing.T) {
	// Un precio cuya pertenencia y país no existen: los LEFT JOIN dejan las
	// diez columnas de enriquecimiento en NULL. La fila se devuelve completa
	// con los campos en nil, nunca se descarta.
	scan := func(dest ...interface{}) error {
		require.Len(t, dest, 20)

		*(dest[0].(*int)) = 7
		*(dest[1].(*string)) = "mxn-splashmix-10-imagen-sandbox"
		*(dest[2].(*int)) = 99
		*(dest[3].(*string)) = "MXN"
		*(dest[4].(*string)) = "price_1S1GF3ROVpWRmEfB6hRtG5Cy"
		*(dest[5].(*int)) = 580
		*(dest[6].(*int)) = 14
		*(dest[7].(*string)) = models.StatusActivo
		*(dest[8].(**string)) = nil
		*(dest[9].(*time.Time)) = time.Now()

		*(dest[10].(**int)) = nil
		*(dest[11].(**string)) = nil
		*(dest[12].(**int)) = nil
		*(dest[13].(**string)) = nil
		*(dest[14].(**string)) = nil
		*(dest[15].(**string)) = nil
		*(dest[16].(**string)) = nil
		*(dest[17].(**string)) = nil
		*(dest[18].(**bool)) = nil
		*(dest[19].(**int)) = nil
		return nil
	}

	var precio models.PrecioDetallado
	require.NoError(t, scanPrecioDetallado(scan, &precio))

	assert.Equal(t, 7, precio.ID)
	assert.Equal(t, 99, precio.IDPertenencia)
	assert.Equal(t, "MXN", precio.IDPais)

	assert.Nil(t, precio.PertenenciaID)
	assert.Nil(t, precio.ProductoNombre)
	assert.Nil(t, precio.ProductoCantidad)
	assert.Nil(t, precio.TipoProductoNombre)
	assert.Nil(t, precio.ConjuntoNombre)
	assert.Nil(t, precio.PaisNombre)
	assert.Nil(t, precio.PaisMoneda)
	assert.Nil(t, precio.PaisSimbolo)
	assert.Nil(t, precio.PaisSide)
	assert.Nil(t, precio.PaisDecs)
}

func TestScanPrecioDetalladoFilaCompleta(t *testing.T) {
	nombre := "México"
	scan := func(dest ...interface{}) error {
		*(dest[0].(*int)) = 1
		*(dest[15].(**string)) = &nombre
		return nil
	}

	var precio models.PrecioDetallado
	require.NoError(t, scanPrecioDetallado(scan, &precio))
	require.NotNil(t, precio.PaisNombre)
	assert.Equal(t, "México", *precio.PaisNombre)
}
