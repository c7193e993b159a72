package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/splashmix/catalog-service/internal/services"
)

// API maneja todos los endpoints de la API
type API struct {
	catalogoService    *services.CatalogoService
	paisService        *services.PaisService
	pertenenciaService *services.PertenenciaService
	textoService       *services.TextoService
	precioService      *services.PrecioService
	logger             *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	catalogoService *services.CatalogoService,
	paisService *services.PaisService,
	pertenenciaService *services.PertenenciaService,
	textoService *services.TextoService,
	precioService *services.PrecioService,
	logger *logrus.Logger,
) *API {
	return &API{
		catalogoService:    catalogoService,
		paisService:        paisService,
		pertenenciaService: pertenenciaService,
		textoService:       textoService,
		precioService:      precioService,
		logger:             logger,
	}
}

// pageParams lee skip/limit de la query string con sus valores por defecto.
// Los valores fuera de rango los rechaza el servicio antes de consultar.
func pageParams(c *gin.Context) (models.PageParams, error) {
	page := models.DefaultPageParams()

	if raw := c.Query("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return page, &models.ValidationError{Field: "skip", Issue: "debe ser un entero"}
		}
		page.Skip = skip
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return page, &models.ValidationError{Field: "limit", Issue: "debe ser un entero"}
		}
		page.Limit = limit
	}

	return page, nil
}

// pathID lee un parámetro de ruta entero.
func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, &models.ValidationError{Field: name, Issue: "debe ser un entero"}
	}
	return id, nil
}

// respondError traduce la taxonomía de errores a códigos HTTP: NotFound →
// 404, Validation → 422, todo lo demás (consulta/conexión) → 500. El mensaje
// siempre viaja en el sobre estándar.
func (api *API) respondError(c *gin.Context, err error) {
	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, models.NewFailureResponse(notFound.Error()))
		return
	}

	var validation *models.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, models.NewFailureResponse(validation.Error()))
		return
	}

	api.logger.WithError(err).Error("Error handling request")
	c.JSON(http.StatusInternalServerError, models.NewFailureResponse("Error interno del servidor"))
}

// ============ ENDPOINTS CONJUNTO ============

// ListConjuntos obtiene la lista de conjuntos con paginación
func (api *API) ListConjuntos(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	conjuntos, total, err := api.catalogoService.ListConjuntos(page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d conjuntos", len(conjuntos))
	c.JSON(http.StatusOK, models.NewListResponse(message, conjuntos, total))
}

// GetConjunto obtiene un conjunto específico por ID
func (api *API) GetConjunto(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	conjunto, err := api.catalogoService.GetConjunto(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("Conjunto obtenido correctamente", conjunto))
}

// ============ ENDPOINTS PAIS ============

// ListPaises obtiene la lista de países con paginación
func (api *API) ListPaises(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	paises, total, err := api.paisService.List(page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d países", len(paises))
	c.JSON(http.StatusOK, models.NewListResponse(message, paises, total))
}

// GetPais obtiene un país por su código: acepta ISO alpha-2 o la llave
// interna de 3 letras
func (api *API) GetPais(c *gin.Context) {
	pais, err := api.paisService.GetByCodigo(c.Param("codigo"))
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("País obtenido correctamente", pais))
}

// ============ ENDPOINTS TIPO PRODUCTO ============

// ListTiposProducto obtiene la lista de tipos de producto con paginación
func (api *API) ListTiposProducto(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	tipos, total, err := api.catalogoService.ListTiposProducto(page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d tipos de producto", len(tipos))
	c.JSON(http.StatusOK, models.NewListResponse(message, tipos, total))
}

// GetTipoProducto obtiene un tipo de producto específico por ID
func (api *API) GetTipoProducto(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	tipo, err := api.catalogoService.GetTipoProducto(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("Tipo de producto obtenido correctamente", tipo))
}

// ============ ENDPOINTS PRODUCTO ============

// ListProductos obtiene la lista de productos con paginación
func (api *API) ListProductos(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	productos, total, err := api.catalogoService.ListProductos(page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d productos", len(productos))
	c.JSON(http.StatusOK, models.NewListResponse(message, productos, total))
}

// GetProducto obtiene un producto específico por ID
func (api *API) GetProducto(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	producto, err := api.catalogoService.GetProducto(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("Producto obtenido correctamente", producto))
}

// ============ ENDPOINTS PERTENENCIA ============

// ListPertenencias obtiene la lista de pertenencias con información detallada
func (api *API) ListPertenencias(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	pertenencias, total, err := api.pertenenciaService.List(page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d pertenencias", len(pertenencias))
	c.JSON(http.StatusOK, models.NewListResponse(message, pertenencias, total))
}

// GetPertenencia obtiene una pertenencia específica con información detallada
func (api *API) GetPertenencia(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	pertenencia, err := api.pertenenciaService.GetByID(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("Pertenencia obtenida correctamente", pertenencia))
}

// ListPertenenciasByConjunto obtiene todas las pertenencias de un conjunto
func (api *API) ListPertenenciasByConjunto(c *gin.Context) {
	idConjunto, err := pathID(c, "conjunto_id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	pertenencias, total, err := api.pertenenciaService.ListByConjunto(idConjunto, page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d pertenencias del conjunto ID %d", len(pertenencias), idConjunto)
	c.JSON(http.StatusOK, models.NewListResponse(message, pertenencias, total))
}

// ============ ENDPOINTS TEXTO ============

// ListTextos obtiene la lista de textos con información detallada
func (api *API) ListTextos(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	textos, total, err := api.textoService.List(page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d textos", len(textos))
	c.JSON(http.StatusOK, models.NewListResponse(message, textos, total))
}

// GetTexto obtiene un texto específico con información detallada
func (api *API) GetTexto(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	texto, err := api.textoService.GetByID(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("Texto obtenido correctamente", texto))
}

// ListTextosByPais obtiene los textos de un país específico
func (api *API) ListTextosByPais(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	codigo := c.Param("codigo")
	textos, total, err := api.textoService.ListByPais(codigo, page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d textos para el país %s", len(textos), codigo)
	c.JSON(http.StatusOK, models.NewListResponse(message, textos, total))
}

// ============ ENDPOINTS PRECIO ============

// ListPrecios obtiene la lista de precios con información detallada,
// filtrable por ambiente y país
func (api *API) ListPrecios(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	params := services.PrecioFilterParams{
		Ambiente: c.Query("environment"),
		Pais:     c.Query("country"),
	}

	precios, total, err := api.precioService.List(params, page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d precios", len(precios))
	c.JSON(http.StatusOK, models.NewListResponse(message, precios, total))
}

// GetPrecio obtiene un precio específico con información detallada
func (api *API) GetPrecio(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	precio, err := api.precioService.GetByID(id)
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewGenericResponse("Precio obtenido correctamente", precio))
}

// ListPreciosByPertenencia obtiene todos los precios de una pertenencia en
// diferentes países
func (api *API) ListPreciosByPertenencia(c *gin.Context) {
	idPertenencia, err := pathID(c, "pertenencia_id")
	if err != nil {
		api.respondError(c, err)
		return
	}

	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	precios, total, err := api.precioService.ListByPertenencia(idPertenencia, page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d precios para la pertenencia ID %d", len(precios), idPertenencia)
	c.JSON(http.StatusOK, models.NewListResponse(message, precios, total))
}

// ListPreciosByPais obtiene todos los precios para un país específico
func (api *API) ListPreciosByPais(c *gin.Context) {
	page, err := pageParams(c)
	if err != nil {
		api.respondError(c, err)
		return
	}

	codigo := c.Param("codigo")
	precios, total, err := api.precioService.ListByPais(codigo, page)
	if err != nil {
		api.respondError(c, err)
		return
	}

	message := fmt.Sprintf("Se obtuvieron %d precios para el país %s", len(precios), codigo)
	c.JSON(http.StatusOK, models.NewListResponse(message, precios, total))
}
