package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestPageParamsDefaults(t *testing.T) {
	c, _ := testContext("/precios")

	page, err := pageParams(c)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPageParams(), page)
}

func TestPageParamsExplicitos(t *testing.T) {
	c, _ := testContext("/precios?skip=40&limit=25")

	page, err := pageParams(c)
	require.NoError(t, err)
	assert.Equal(t, 40, page.Skip)
	assert.Equal(t, 25, page.Limit)
}

func TestPageParamsNoEnteros(t *testing.T) {
	var verr *models.ValidationError

	c, _ := testContext("/precios?skip=abc")
	_, err := pageParams(c)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "skip", verr.Field)

	c, _ = testContext("/precios?limit=diez")
	_, err = pageParams(c)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Field)
}

func TestPathIDNoEntero(t *testing.T) {
	c, _ := testContext("/precios/abc")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_, err := pathID(c, "id")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func decodeFailure(t *testing.T, w *httptest.ResponseRecorder) models.GenericResponse {
	t.Helper()
	var body models.GenericResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRespondErrorNotFound(t *testing.T) {
	api := &API{logger: logrus.New()}
	c, w := testContext("/precios/99")

	api.respondError(c, models.NewNotFoundError("Precio", 99))

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeFailure(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Precio con ID 99 no encontrado", body.Message)
}

func TestRespondErrorValidation(t *testing.T) {
	api := &API{logger: logrus.New()}
	c, w := testContext("/precios?skip=-1")

	api.respondError(c, &models.ValidationError{Field: "skip", Issue: "debe ser >= 0, recibido -1"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeFailure(t, w)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "skip")
}

func TestRespondErrorInternoNoFiltraDetalle(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	api := &API{logger: logger}
	c, w := testContext("/precios")

	api.respondError(c, &models.QueryError{Op: "precio.List", Err: errors.New("connection reset")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeFailure(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Error interno del servidor", body.Message)
}
