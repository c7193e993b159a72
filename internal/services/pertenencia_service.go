package services

import (
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
)

// PertenenciaRepository es el subconjunto del repositorio de pertenencias que
// el servicio consume.
type PertenenciaRepository interface {
	Count(opts database.PertenenciaFilter) (int, error)
	List(opts database.PertenenciaFilter, page models.PageParams) ([]models.PertenenciaDetallada, error)
	GetByID(id int) (*models.PertenenciaDetallada, error)
}

// PertenenciaService maneja las consultas de pertenencias
type PertenenciaService struct {
	repo   PertenenciaRepository
	logger *logrus.Logger
}

// NewPertenenciaService crea una nueva instancia del servicio
func NewPertenenciaService(db *database.DB, logger *logrus.Logger) *PertenenciaService {
	return &PertenenciaService{
		repo:   database.NewPertenenciaRepository(db, logger),
		logger: logger,
	}
}

// List obtiene pertenencias paginadas junto con el total
func (s *PertenenciaService) List(page models.PageParams) ([]models.PertenenciaDetallada, int, error) {
	return s.list(database.PertenenciaFilter{}, page)
}

// ListByConjunto obtiene las pertenencias de un conjunto
func (s *PertenenciaService) ListByConjunto(idConjunto int, page models.PageParams) ([]models.PertenenciaDetallada, int, error) {
	return s.list(database.PertenenciaFilter{IDConjunto: &idConjunto}, page)
}

func (s *PertenenciaService) list(opts database.PertenenciaFilter, page models.PageParams) ([]models.PertenenciaDetallada, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count(opts)
	if err != nil {
		return nil, 0, err
	}

	pertenencias, err := s.repo.List(opts, page)
	if err != nil {
		return nil, 0, err
	}

	return pertenencias, total, nil
}

// GetByID obtiene una pertenencia por ID
func (s *PertenenciaService) GetByID(id int) (*models.PertenenciaDetallada, error) {
	return s.repo.GetByID(id)
}
