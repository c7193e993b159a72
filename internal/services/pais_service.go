package services

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
)

// PaisRepository es el subconjunto del repositorio de países que el servicio
// consume.
type PaisRepository interface {
	Count() (int, error)
	List(page models.PageParams) ([]models.Pais, error)
	GetByID(id string) (*models.Pais, error)
	GetByISO2(code string) (*models.Pais, error)
}

// PaisService maneja la lógica de negocio para Pais, incluida la
// normalización de códigos de país.
type PaisService struct {
	repo   PaisRepository
	logger *logrus.Logger
}

// NewPaisService crea una nueva instancia del servicio
func NewPaisService(db *database.DB, logger *logrus.Logger) *PaisService {
	return &PaisService{
		repo:   database.NewPaisRepository(db, logger),
		logger: logger,
	}
}

// ResolveCodigo normaliza un token de país a la llave interna de 3 letras.
// Un token de 2 letras se busca por su ISO alpha-2 y falla con NotFound si no
// existe. Cualquier otro largo se pasa en mayúsculas sin validar existencia:
// el filtro posterior simplemente no encontrará filas. La asimetría es
// intencional y se preserva tal cual.
func (s *PaisService) ResolveCodigo(token string) (string, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if len(token) != 2 {
		return token, nil
	}

	pais, err := s.repo.GetByISO2(token)
	if err != nil {
		return "", err
	}
	return pais.ID, nil
}

// List obtiene países paginados junto con el total
func (s *PaisService) List(page models.PageParams) ([]models.Pais, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, err
	}

	paises, err := s.repo.List(page)
	if err != nil {
		return nil, 0, err
	}

	return paises, total, nil
}

// GetByCodigo obtiene un país aceptando ISO alpha-2 o la llave interna
func (s *PaisService) GetByCodigo(token string) (*models.Pais, error) {
	codigo, err := s.ResolveCodigo(token)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(codigo)
}
