package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// ImportResult resume una corrida del importador.
type ImportResult struct {
	Inserted int
	Skipped  int
	Errors   int
}

// PrecioSeed describe un precio semilla a cargar para un ambiente: el
// identificador del proveedor de pagos y la cantidad de imágenes que lo liga
// a su producto.
type PrecioSeed struct {
	PriceID  string
	Imagenes int
}

// ImportService carga las semillas del catálogo desde hojas de cálculo y
// listas fijas. Todas las cargas son upserts idempotentes por llave natural.
type ImportService struct {
	paisRepo        *database.PaisRepository
	textoRepo       *database.TextoRepository
	conjuntoRepo    *database.ConjuntoRepository
	tipoRepo        *database.TipoProductoRepository
	productoRepo    *database.ProductoRepository
	pertenenciaRepo *database.PertenenciaRepository
	precioRepo      *database.PrecioRepository
	logger          *logrus.Logger
}

// NewImportService crea una nueva instancia del importador
func NewImportService(db *database.DB, logger *logrus.Logger) *ImportService {
	return &ImportService{
		paisRepo:        database.NewPaisRepository(db, logger),
		textoRepo:       database.NewTextoRepository(db, logger),
		conjuntoRepo:    database.NewConjuntoRepository(db, logger),
		tipoRepo:        database.NewTipoProductoRepository(db, logger),
		productoRepo:    database.NewProductoRepository(db, logger),
		pertenenciaRepo: database.NewPertenenciaRepository(db, logger),
		precioRepo:      database.NewPrecioRepository(db, logger),
		logger:          logger,
	}
}

// readSheet abre la primera hoja del archivo y retorna sus filas.
func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// headerIndex mapea cada encabezado (en minúsculas) a su índice de columna.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return idx
}

func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(row []string, idx map[string]int, name string) (int, error) {
	raw := cell(row, idx, name)
	if raw == "" {
		return 0, fmt.Errorf("column %s is empty", name)
	}
	return strconv.Atoi(raw)
}

func cellBool(row []string, idx map[string]int, name string) bool {
	switch strings.ToLower(cell(row, idx, name)) {
	case "1", "true", "si", "sí":
		return true
	}
	return false
}

// ImportPaises carga países y sus textos de unidad desde paises.xlsx. La
// columna iso es la llave del país y también su moneda_tic; singular/plural
// alimentan la tabla de textos para el tipo de producto indicado.
func (s *ImportService) ImportPaises(path string, idTipoProducto int) (ImportResult, error) {
	rows, err := readSheet(path)
	if err != nil {
		return ImportResult{}, err
	}
	if len(rows) < 2 {
		return ImportResult{}, fmt.Errorf("spreadsheet %s has no data rows", path)
	}

	idx := headerIndex(rows[0])
	result := ImportResult{}

	for n, row := range rows[1:] {
		iso := strings.ToUpper(cell(row, idx, "iso"))
		if iso == "" {
			result.Skipped++
			continue
		}

		decs, err := cellInt(row, idx, "decs")
		if err != nil {
			s.logger.WithError(err).Warnf("Skipping pais row %d (%s)", n+2, iso)
			result.Errors++
			continue
		}

		pais := &models.Pais{
			ID:        iso,
			Nombre:    cell(row, idx, "nombre"),
			Moneda:    cell(row, idx, "moneda"),
			MonedaTic: iso,
			Simbolo:   cell(row, idx, "simbolo"),
			Side:      cellBool(row, idx, "side"),
			Decs:      decs,
		}
		if iso2 := strings.ToUpper(cell(row, idx, "iso2")); iso2 != "" {
			pais.ISO2 = &iso2
		}

		if err := s.paisRepo.Upsert(pais); err != nil {
			s.logger.WithError(err).Errorf("Error upserting pais %s", iso)
			result.Errors++
			continue
		}

		texto := &models.Texto{
			IDTipoProducto: idTipoProducto,
			IDPais:         iso,
			Unidad:         cell(row, idx, "singular"),
			Unidades:       cell(row, idx, "plural"),
		}
		if err := s.textoRepo.Upsert(texto); err != nil {
			s.logger.WithError(err).Errorf("Error upserting textos for pais %s", iso)
			result.Errors++
			continue
		}

		result.Inserted++
	}

	s.logger.WithFields(logrus.Fields{
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
		"errors":   result.Errors,
	}).Info("Paises import finished")

	return result, nil
}

// ImportProductos carga productos desde productos.xlsx y crea la pertenencia
// de cada producto con su conjunto. La hoja trae el encabezado en la segunda
// fila. La columna id_conjunto solo se usa para armar pertenencias: el
// producto nunca guarda una referencia directa al conjunto.
func (s *ImportService) ImportProductos(path string) (ImportResult, error) {
	rows, err := readSheet(path)
	if err != nil {
		return ImportResult{}, err
	}
	if len(rows) < 3 {
		return ImportResult{}, fmt.Errorf("spreadsheet %s has no data rows", path)
	}

	idx := headerIndex(rows[1])
	result := ImportResult{}

	for n, row := range rows[2:] {
		id, err := cellInt(row, idx, "id")
		if err != nil {
			result.Skipped++
			continue
		}

		cantidad, err := cellInt(row, idx, "cantidad")
		if err == nil && cantidad <= 0 {
			err = fmt.Errorf("cantidad must be positive, got %d", cantidad)
		}
		if err != nil {
			s.logger.WithError(err).Warnf("Skipping producto row %d (id %d)", n+3, id)
			result.Errors++
			continue
		}

		idTipo, err := cellInt(row, idx, "id_tipo_producto")
		if err != nil {
			s.logger.WithError(err).Warnf("Skipping producto row %d (id %d)", n+3, id)
			result.Errors++
			continue
		}

		precioBase, err := cellInt(row, idx, "precio_base")
		if err != nil {
			s.logger.WithError(err).Warnf("Skipping producto row %d (id %d)", n+3, id)
			result.Errors++
			continue
		}

		producto := &models.Producto{
			ID:             id,
			Nombre:         cell(row, idx, "nombre"),
			Cantidad:       cantidad,
			IDTipoProducto: idTipo,
			PrecioBase:     precioBase,
		}
		if err := s.productoRepo.Upsert(producto); err != nil {
			s.logger.WithError(err).Errorf("Error upserting producto %d", id)
			result.Errors++
			continue
		}
		result.Inserted++

		idConjunto, err := cellInt(row, idx, "id_conjunto")
		if err != nil {
			continue
		}

		exists, err := s.pertenenciaRepo.Exists(idConjunto, id)
		if err != nil {
			s.logger.WithError(err).Errorf("Error checking pertenencia for producto %d", id)
			result.Errors++
			continue
		}
		if exists {
			continue
		}

		if err := s.pertenenciaRepo.Create(idConjunto, id); err != nil {
			s.logger.WithError(err).Errorf("Error creating pertenencia for producto %d", id)
			result.Errors++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
		"errors":   result.Errors,
	}).Info("Productos import finished")

	return result, nil
}

// SeedConjunto asegura la existencia de un conjunto por su sitio.
func (s *ImportService) SeedConjunto(sitio, nombre string) error {
	return s.conjuntoRepo.Upsert(&models.Conjunto{Sitio: sitio, Nombre: nombre})
}

// SeedTipoProducto asegura la existencia de un tipo de producto por nombre.
func (s *ImportService) SeedTipoProducto(nombre, unidadBase string) error {
	return s.tipoRepo.Upsert(&models.TipoProducto{Nombre: nombre, UnidadBase: unidadBase})
}

// SeedPrecios carga precios semilla para un país y ambiente. Cada semilla se
// liga a su producto por cantidad de imágenes y a la pertenencia del
// producto; el nombre derivado y el ratio se calculan aquí igual que en la
// recomputación por lotes. Los price_id ya cargados se saltan.
func (s *ImportService) SeedPrecios(idPais, ambiente string, seeds []PrecioSeed) (ImportResult, error) {
	// El país debe existir antes de ligar precios
	if _, err := s.paisRepo.GetByID(idPais); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{}
	for _, seed := range seeds {
		exists, err := s.precioRepo.ExistsByPriceID(seed.PriceID)
		if err != nil {
			return result, err
		}
		if exists {
			result.Skipped++
			continue
		}

		producto, err := s.productoRepo.GetByCantidad(seed.Imagenes)
		if err != nil {
			s.logger.WithError(err).Warnf("No product found for %d images, skipping", seed.Imagenes)
			result.Skipped++
			continue
		}

		pertenencia, err := s.pertenenciaRepo.GetByProducto(producto.ID)
		if err != nil {
			s.logger.WithError(err).Warnf("No pertenencia found for product %d, skipping", producto.ID)
			result.Skipped++
			continue
		}

		conjunto, err := s.conjuntoRepo.GetByID(pertenencia.IDConjunto)
		if err != nil {
			return result, err
		}

		tipo, err := s.tipoRepo.GetByID(producto.IDTipoProducto)
		if err != nil {
			return result, err
		}

		ratio, err := models.RatioImagen(producto.PrecioBase, producto.Cantidad)
		if err != nil {
			return result, err
		}

		precio := &models.Precio{
			Nombre:         models.BuildNombrePrecio(idPais, conjunto.Sitio, producto.Cantidad, tipo.Nombre, ambiente),
			IDPertenencia:  pertenencia.ID,
			IDPais:         idPais,
			PriceID:        seed.PriceID,
			CantidadPrecio: producto.PrecioBase,
			RatioImagen:    ratio,
			Status:         models.StatusActivo,
			Ambiente:       &ambiente,
		}
		if err := s.precioRepo.Insert(precio); err != nil {
			return result, err
		}

		s.logger.Infof("Inserted price: %s", precio.Nombre)
		result.Inserted++
	}

	s.logger.WithFields(logrus.Fields{
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
		"ambiente": ambiente,
	}).Info("Precios seed finished")

	return result, nil
}
