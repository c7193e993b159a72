package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// ConjuntoRepository maneja las operaciones de base de datos para Conjunto
type ConjuntoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewConjuntoRepository crea una nueva instancia del repositorio
func NewConjuntoRepository(db *DB, logger *logrus.Logger) *ConjuntoRepository {
	return &ConjuntoRepository{
		db:     db,
		logger: logger,
	}
}

// Count cuenta el total de conjuntos
func (r *ConjuntoRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRowWithTimeout("SELECT COUNT(*) FROM conjunto").Scan(&total)
	if err != nil {
		return 0, &models.QueryError{Op: "count conjunto", Err: err}
	}
	return total, nil
}

// List obtiene conjuntos con paginación
func (r *ConjuntoRepository) List(page models.PageParams) ([]models.Conjunto, error) {
	query := `
		SELECT id, sitio, nombre, created_at
		FROM conjunto
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryWithTimeout(query, page.Limit, page.Skip)
	if err != nil {
		return nil, &models.QueryError{Op: "list conjunto", Err: err}
	}
	defer rows.Close()

	conjuntos := []models.Conjunto{}
	for rows.Next() {
		var conjunto models.Conjunto
		if err := rows.Scan(&conjunto.ID, &conjunto.Sitio, &conjunto.Nombre, &conjunto.CreatedAt); err != nil {
			return nil, &models.QueryError{Op: "scan conjunto", Err: err}
		}
		conjuntos = append(conjuntos, conjunto)
	}

	return conjuntos, rows.Err()
}

// GetByID obtiene un conjunto por ID
func (r *ConjuntoRepository) GetByID(id int) (*models.Conjunto, error) {
	query := `
		SELECT id, sitio, nombre, created_at
		FROM conjunto
		WHERE id = $1
	`

	var conjunto models.Conjunto
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&conjunto.ID, &conjunto.Sitio, &conjunto.Nombre, &conjunto.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("conjunto", id)
		}
		return nil, &models.QueryError{Op: "get conjunto", Err: err}
	}

	return &conjunto, nil
}

// GetBySitio obtiene un conjunto por su identificador de sitio
func (r *ConjuntoRepository) GetBySitio(sitio string) (*models.Conjunto, error) {
	query := `
		SELECT id, sitio, nombre, created_at
		FROM conjunto
		WHERE sitio = $1
	`

	var conjunto models.Conjunto
	err := r.db.QueryRowWithTimeout(query, sitio).Scan(
		&conjunto.ID, &conjunto.Sitio, &conjunto.Nombre, &conjunto.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("conjunto", sitio)
		}
		return nil, &models.QueryError{Op: "get conjunto by sitio", Err: err}
	}

	return &conjunto, nil
}

// Upsert inserta o actualiza un conjunto por su sitio
func (r *ConjuntoRepository) Upsert(conjunto *models.Conjunto) error {
	query := `
		INSERT INTO conjunto (sitio, nombre, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (sitio) DO UPDATE SET nombre = EXCLUDED.nombre
	`

	if _, err := r.db.ExecWithTimeout(query, conjunto.Sitio, conjunto.Nombre); err != nil {
		return &models.QueryError{Op: "upsert conjunto", Err: err}
	}

	return nil
}
