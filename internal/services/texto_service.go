package services

import (
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
)

// TextoRepository es el subconjunto del repositorio de textos que el servicio
// consume.
type TextoRepository interface {
	Count(opts database.TextoFilter) (int, error)
	List(opts database.TextoFilter, page models.PageParams) ([]models.TextoDetallado, error)
	GetByID(id int) (*models.TextoDetallado, error)
}

// TextoService maneja las consultas de textos localizados
type TextoService struct {
	repo   TextoRepository
	paises *PaisService
	logger *logrus.Logger
}

// NewTextoService crea una nueva instancia del servicio
func NewTextoService(db *database.DB, paises *PaisService, logger *logrus.Logger) *TextoService {
	return &TextoService{
		repo:   database.NewTextoRepository(db, logger),
		paises: paises,
		logger: logger,
	}
}

// List obtiene textos paginados junto con el total
func (s *TextoService) List(page models.PageParams) ([]models.TextoDetallado, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	return s.list(database.TextoFilter{}, page)
}

// ListByPais obtiene los textos de un país. El token pasa por el
// normalizador, así que acepta ISO alpha-2 o la llave interna. La ventana se
// valida antes de normalizar: una página inválida no ejecuta ni la búsqueda
// por ISO.
func (s *TextoService) ListByPais(token string, page models.PageParams) ([]models.TextoDetallado, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	codigo, err := s.paises.ResolveCodigo(token)
	if err != nil {
		return nil, 0, err
	}
	return s.list(database.TextoFilter{IDPais: &codigo}, page)
}

func (s *TextoService) list(opts database.TextoFilter, page models.PageParams) ([]models.TextoDetallado, int, error) {
	total, err := s.repo.Count(opts)
	if err != nil {
		return nil, 0, err
	}

	textos, err := s.repo.List(opts, page)
	if err != nil {
		return nil, 0, err
	}

	return textos, total, nil
}

// GetByID obtiene un texto por ID
func (s *TextoService) GetByID(id int) (*models.TextoDetallado, error) {
	return s.repo.GetByID(id)
}
