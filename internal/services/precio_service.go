package services

import (
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
)

// PrecioRepository es el subconjunto del repositorio de precios que el
// servicio consume.
type PrecioRepository interface {
	Count(opts database.PrecioFilter) (int, error)
	List(opts database.PrecioFilter, page models.PageParams) ([]models.PrecioDetallado, error)
	GetByID(id int) (*models.PrecioDetallado, error)
}

// PrecioFilterParams son los filtros opcionales que acepta el listado de
// precios. Un campo vacío no filtra.
type PrecioFilterParams struct {
	Ambiente string
	Pais     string
}

// PrecioService maneja las consultas de precios: compone los filtros,
// normaliza el país y orquesta conteo + página sobre el mismo filtro.
type PrecioService struct {
	repo   PrecioRepository
	paises *PaisService
	logger *logrus.Logger
}

// NewPrecioService crea una nueva instancia del servicio
func NewPrecioService(db *database.DB, paises *PaisService, logger *logrus.Logger) *PrecioService {
	return &PrecioService{
		repo:   database.NewPrecioRepository(db, logger),
		paises: paises,
		logger: logger,
	}
}

// List obtiene precios filtrados por ambiente y/o país, paginados, junto con
// el total del conjunto filtrado. La normalización del país ocurre antes de
// cualquier consulta de precios; si el código de 2 letras no existe, la
// operación completa falla con NotFound y no se intenta ningún join.
func (s *PrecioService) List(params PrecioFilterParams, page models.PageParams) ([]models.PrecioDetallado, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	var opts database.PrecioFilter
	if params.Ambiente != "" {
		ambiente := params.Ambiente
		opts.Ambiente = &ambiente
	}
	if params.Pais != "" {
		codigo, err := s.paises.ResolveCodigo(params.Pais)
		if err != nil {
			return nil, 0, err
		}
		opts.IDPais = &codigo
	}

	return s.list(opts, page)
}

// ListByPertenencia obtiene los precios de una pertenencia en sus distintos
// países
func (s *PrecioService) ListByPertenencia(idPertenencia int, page models.PageParams) ([]models.PrecioDetallado, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	return s.list(database.PrecioFilter{IDPertenencia: &idPertenencia}, page)
}

// ListByPais obtiene los precios de un país. El token pasa por el
// normalizador, así que acepta ISO alpha-2 o la llave interna.
func (s *PrecioService) ListByPais(token string, page models.PageParams) ([]models.PrecioDetallado, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	codigo, err := s.paises.ResolveCodigo(token)
	if err != nil {
		return nil, 0, err
	}
	return s.list(database.PrecioFilter{IDPais: &codigo}, page)
}

func (s *PrecioService) list(opts database.PrecioFilter, page models.PageParams) ([]models.PrecioDetallado, int, error) {
	total, err := s.repo.Count(opts)
	if err != nil {
		return nil, 0, err
	}

	precios, err := s.repo.List(opts, page)
	if err != nil {
		return nil, 0, err
	}

	return precios, total, nil
}

// GetByID obtiene un precio por ID
func (s *PrecioService) GetByID(id int) (*models.PrecioDetallado, error) {
	return s.repo.GetByID(id)
}
