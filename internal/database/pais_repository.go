package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// PaisRepository maneja las operaciones de base de datos para Pais
type PaisRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewPaisRepository crea una nueva instancia del repositorio
func NewPaisRepository(db *DB, logger *logrus.Logger) *PaisRepository {
	return &PaisRepository{
		db:     db,
		logger: logger,
	}
}

const paisSelect = `
	SELECT id, nombre, moneda, moneda_tic, simbolo, side, decs, iso2, created_at
	FROM pais
`

// Count cuenta el total de países
func (r *PaisRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRowWithTimeout("SELECT COUNT(*) FROM pais").Scan(&total)
	if err != nil {
		return 0, &models.QueryError{Op: "count pais", Err: err}
	}
	return total, nil
}

// List obtiene países con paginación
func (r *PaisRepository) List(page models.PageParams) ([]models.Pais, error) {
	query := paisSelect + " ORDER BY id LIMIT $1 OFFSET $2"

	rows, err := r.db.QueryWithTimeout(query, page.Limit, page.Skip)
	if err != nil {
		return nil, &models.QueryError{Op: "list pais", Err: err}
	}
	defer rows.Close()

	paises := []models.Pais{}
	for rows.Next() {
		var pais models.Pais
		err := rows.Scan(
			&pais.ID, &pais.Nombre, &pais.Moneda, &pais.MonedaTic,
			&pais.Simbolo, &pais.Side, &pais.Decs, &pais.ISO2, &pais.CreatedAt,
		)
		if err != nil {
			return nil, &models.QueryError{Op: "scan pais", Err: err}
		}
		paises = append(paises, pais)
	}

	return paises, rows.Err()
}

// GetByID obtiene un país por su llave interna de 3 letras
func (r *PaisRepository) GetByID(id string) (*models.Pais, error) {
	query := paisSelect + " WHERE id = $1"

	var pais models.Pais
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&pais.ID, &pais.Nombre, &pais.Moneda, &pais.MonedaTic,
		&pais.Simbolo, &pais.Side, &pais.Decs, &pais.ISO2, &pais.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("país", id)
		}
		return nil, &models.QueryError{Op: "get pais", Err: err}
	}

	return &pais, nil
}

// GetByISO2 obtiene un país por su código ISO-3166 alpha-2. El código debe
// venir ya en mayúsculas; el normalizador es quien lo garantiza.
func (r *PaisRepository) GetByISO2(code string) (*models.Pais, error) {
	query := paisSelect + " WHERE iso2 = $1"

	var pais models.Pais
	err := r.db.QueryRowWithTimeout(query, code).Scan(
		&pais.ID, &pais.Nombre, &pais.Moneda, &pais.MonedaTic,
		&pais.Simbolo, &pais.Side, &pais.Decs, &pais.ISO2, &pais.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("país", code)
		}
		return nil, &models.QueryError{Op: "get pais by iso2", Err: err}
	}

	return &pais, nil
}

// Upsert inserta o actualiza un país por su llave natural. Lo usa el
// importador de semillas; el API de consulta nunca escribe.
func (r *PaisRepository) Upsert(pais *models.Pais) error {
	query := `
		INSERT INTO pais (id, nombre, moneda, moneda_tic, simbolo, side, decs, iso2, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			moneda = EXCLUDED.moneda,
			moneda_tic = EXCLUDED.moneda_tic,
			simbolo = EXCLUDED.simbolo,
			side = EXCLUDED.side,
			decs = EXCLUDED.decs,
			iso2 = EXCLUDED.iso2
	`

	_, err := r.db.ExecWithTimeout(query,
		pais.ID, pais.Nombre, pais.Moneda, pais.MonedaTic,
		pais.Simbolo, pais.Side, pais.Decs, pais.ISO2,
	)
	if err != nil {
		return &models.QueryError{Op: "upsert pais", Err: err}
	}

	return nil
}
