package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNombrePrecio(t *testing.T) {
	nombre := BuildNombrePrecio("MXN", "splashmix", 10, "imagen", AmbienteSandbox)
	assert.Equal(t, "mxn-splashmix-10-imagen-sandbox", nombre)
}

func TestBuildNombrePrecioSoloBajaElPais(t *testing.T) {
	nombre := BuildNombrePrecio("COP", "Splashmix", 40, "imagen", AmbienteProduction)
	assert.Equal(t, "cop-Splashmix-40-imagen-production", nombre)
}

func TestRatioImagenTrunca(t *testing.T) {
	ratio, err := RatioImagen(580, 40)
	require.NoError(t, err)
	assert.Equal(t, 14, ratio)
}

func TestRatioImagenExacto(t *testing.T) {
	ratio, err := RatioImagen(100, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, ratio)
}

func TestRatioImagenCantidadInvalida(t *testing.T) {
	_, err := RatioImagen(100, 0)
	assert.Error(t, err)

	_, err = RatioImagen(100, -5)
	assert.Error(t, err)
}
