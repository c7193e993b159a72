package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPageParams(t *testing.T) {
	page := DefaultPageParams()
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, 10, page.Limit)
}

func TestPageParamsValidate(t *testing.T) {
	assert.NoError(t, PageParams{Skip: 0, Limit: 1}.Validate())
	assert.NoError(t, PageParams{Skip: 0, Limit: 100}.Validate())
	assert.NoError(t, PageParams{Skip: 500, Limit: 50}.Validate())
}

func TestPageParamsValidateSkipNegativo(t *testing.T) {
	err := PageParams{Skip: -1, Limit: 10}.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "skip", verr.Field)
}

func TestPageParamsValidateLimitFueraDeRango(t *testing.T) {
	var verr *ValidationError

	err := PageParams{Skip: 0, Limit: 0}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Field)

	err = PageParams{Skip: 0, Limit: 101}.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Field)
}

func TestHasMore(t *testing.T) {
	page := PageParams{Skip: 0, Limit: 10}
	assert.True(t, page.HasMore(10, 25))

	page = PageParams{Skip: 20, Limit: 10}
	assert.False(t, page.HasMore(5, 25))

	// skip más allá del total: página vacía, sin más resultados
	page = PageParams{Skip: 100, Limit: 10}
	assert.False(t, page.HasMore(0, 25))
}
