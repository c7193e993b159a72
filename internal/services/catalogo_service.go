package services

import (
	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/database"
	"github.com/splashmix/catalog-service/internal/models"
)

// ConjuntoRepository es el subconjunto del repositorio de conjuntos que el
// servicio consume.
type ConjuntoRepository interface {
	Count() (int, error)
	List(page models.PageParams) ([]models.Conjunto, error)
	GetByID(id int) (*models.Conjunto, error)
}

// TipoProductoRepository es el subconjunto del repositorio de tipos de
// producto que el servicio consume.
type TipoProductoRepository interface {
	Count() (int, error)
	List(page models.PageParams) ([]models.TipoProducto, error)
	GetByID(id int) (*models.TipoProducto, error)
}

// ProductoRepository es el subconjunto del repositorio de productos que el
// servicio consume.
type ProductoRepository interface {
	Count() (int, error)
	List(page models.PageParams) ([]models.ProductoDetallado, error)
	GetByID(id int) (*models.ProductoDetallado, error)
}

// CatalogoService agrupa las consultas de las entidades simples del catálogo:
// conjuntos, tipos de producto y productos. Todas son de solo lectura.
type CatalogoService struct {
	conjuntoRepo ConjuntoRepository
	tipoRepo     TipoProductoRepository
	productoRepo ProductoRepository
	logger       *logrus.Logger
}

// NewCatalogoService crea una nueva instancia del servicio
func NewCatalogoService(db *database.DB, logger *logrus.Logger) *CatalogoService {
	return &CatalogoService{
		conjuntoRepo: database.NewConjuntoRepository(db, logger),
		tipoRepo:     database.NewTipoProductoRepository(db, logger),
		productoRepo: database.NewProductoRepository(db, logger),
		logger:       logger,
	}
}

// ListConjuntos obtiene conjuntos paginados junto con el total
func (s *CatalogoService) ListConjuntos(page models.PageParams) ([]models.Conjunto, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	total, err := s.conjuntoRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	conjuntos, err := s.conjuntoRepo.List(page)
	if err != nil {
		return nil, 0, err
	}

	return conjuntos, total, nil
}

// GetConjunto obtiene un conjunto por ID
func (s *CatalogoService) GetConjunto(id int) (*models.Conjunto, error) {
	return s.conjuntoRepo.GetByID(id)
}

// ListTiposProducto obtiene tipos de producto paginados junto con el total
func (s *CatalogoService) ListTiposProducto(page models.PageParams) ([]models.TipoProducto, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	total, err := s.tipoRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	tipos, err := s.tipoRepo.List(page)
	if err != nil {
		return nil, 0, err
	}

	return tipos, total, nil
}

// GetTipoProducto obtiene un tipo de producto por ID
func (s *CatalogoService) GetTipoProducto(id int) (*models.TipoProducto, error) {
	return s.tipoRepo.GetByID(id)
}

// ListProductos obtiene productos paginados junto con el total
func (s *CatalogoService) ListProductos(page models.PageParams) ([]models.ProductoDetallado, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	total, err := s.productoRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	productos, err := s.productoRepo.List(page)
	if err != nil {
		return nil, 0, err
	}

	return productos, total, nil
}

// GetProducto obtiene un producto por ID
func (s *CatalogoService) GetProducto(id int) (*models.ProductoDetallado, error) {
	return s.productoRepo.GetByID(id)
}
