package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// TipoProductoRepository maneja las operaciones de base de datos para TipoProducto
type TipoProductoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewTipoProductoRepository crea una nueva instancia del repositorio
func NewTipoProductoRepository(db *DB, logger *logrus.Logger) *TipoProductoRepository {
	return &TipoProductoRepository{
		db:     db,
		logger: logger,
	}
}

// Count cuenta el total de tipos de producto
func (r *TipoProductoRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRowWithTimeout("SELECT COUNT(*) FROM tipo_producto").Scan(&total)
	if err != nil {
		return 0, &models.QueryError{Op: "count tipo_producto", Err: err}
	}
	return total, nil
}

// List obtiene tipos de producto con paginación
func (r *TipoProductoRepository) List(page models.PageParams) ([]models.TipoProducto, error) {
	query := `
		SELECT id, nombre, unidad_base, created_at
		FROM tipo_producto
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryWithTimeout(query, page.Limit, page.Skip)
	if err != nil {
		return nil, &models.QueryError{Op: "list tipo_producto", Err: err}
	}
	defer rows.Close()

	tipos := []models.TipoProducto{}
	for rows.Next() {
		var tipo models.TipoProducto
		if err := rows.Scan(&tipo.ID, &tipo.Nombre, &tipo.UnidadBase, &tipo.CreatedAt); err != nil {
			return nil, &models.QueryError{Op: "scan tipo_producto", Err: err}
		}
		tipos = append(tipos, tipo)
	}

	return tipos, rows.Err()
}

// GetByID obtiene un tipo de producto por ID
func (r *TipoProductoRepository) GetByID(id int) (*models.TipoProducto, error) {
	query := `
		SELECT id, nombre, unidad_base, created_at
		FROM tipo_producto
		WHERE id = $1
	`

	var tipo models.TipoProducto
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&tipo.ID, &tipo.Nombre, &tipo.UnidadBase, &tipo.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("tipo de producto", id)
		}
		return nil, &models.QueryError{Op: "get tipo_producto", Err: err}
	}

	return &tipo, nil
}

// Upsert inserta o actualiza un tipo de producto por su nombre
func (r *TipoProductoRepository) Upsert(tipo *models.TipoProducto) error {
	query := `
		INSERT INTO tipo_producto (nombre, unidad_base, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (nombre) DO UPDATE SET unidad_base = EXCLUDED.unidad_base
	`

	if _, err := r.db.ExecWithTimeout(query, tipo.Nombre, tipo.UnidadBase); err != nil {
		return &models.QueryError{Op: "upsert tipo_producto", Err: err}
	}

	return nil
}
