package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// PertenenciaFilter acumula los filtros opcionales de la raíz Pertenencia.
// Un campo nil no agrega predicado.
type PertenenciaFilter struct {
	IDConjunto *int
	IDProducto *int
}

func (o PertenenciaFilter) filter() *Filter {
	f := &Filter{}
	if o.IDConjunto != nil {
		f.Equals("pe.id_conjunto", *o.IDConjunto)
	}
	if o.IDProducto != nil {
		f.Equals("pe.id_producto", *o.IDProducto)
	}
	return f
}

// PertenenciaRepository maneja las operaciones de base de datos para Pertenencia
type PertenenciaRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewPertenenciaRepository crea una nueva instancia del repositorio
func NewPertenenciaRepository(db *DB, logger *logrus.Logger) *PertenenciaRepository {
	return &PertenenciaRepository{
		db:     db,
		logger: logger,
	}
}

// Cadena fija de joins para la raíz Pertenencia. Los joins son LEFT: una
// pertenencia con referencias colgantes aparece con el enriquecimiento en
// null, no se descarta.
const pertenenciaDetalleSelect = `
	SELECT pe.id, pe.id_conjunto, pe.id_producto, pe.created_at,
	       c.nombre, c.sitio,
	       p.nombre, p.cantidad
	FROM pertenencia pe
	LEFT JOIN conjunto c ON pe.id_conjunto = c.id
	LEFT JOIN producto p ON pe.id_producto = p.id
`

// Count cuenta las pertenencias que satisfacen el filtro. Usa la misma lista
// de predicados que List.
func (r *PertenenciaRepository) Count(opts PertenenciaFilter) (int, error) {
	f := opts.filter()
	query := "SELECT COUNT(*) FROM pertenencia pe" + f.Where()

	var total int
	if err := r.db.QueryRowWithTimeout(query, f.Args()...).Scan(&total); err != nil {
		return 0, &models.QueryError{Op: "count pertenencia", Err: err}
	}
	return total, nil
}

// List obtiene pertenencias filtradas y paginadas, enriquecidas con conjunto
// y producto
func (r *PertenenciaRepository) List(opts PertenenciaFilter, page models.PageParams) ([]models.PertenenciaDetallada, error) {
	f := opts.filter()
	window, args := f.Window(page.Limit, page.Skip)
	query := pertenenciaDetalleSelect + f.Where() + " ORDER BY pe.id" + window

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, &models.QueryError{Op: "list pertenencia", Err: err}
	}
	defer rows.Close()

	pertenencias := []models.PertenenciaDetallada{}
	for rows.Next() {
		var pertenencia models.PertenenciaDetallada
		err := rows.Scan(
			&pertenencia.ID, &pertenencia.IDConjunto, &pertenencia.IDProducto, &pertenencia.CreatedAt,
			&pertenencia.ConjuntoNombre, &pertenencia.ConjuntoSitio,
			&pertenencia.ProductoNombre, &pertenencia.ProductoCantidad,
		)
		if err != nil {
			return nil, &models.QueryError{Op: "scan pertenencia", Err: err}
		}
		pertenencias = append(pertenencias, pertenencia)
	}

	return pertenencias, rows.Err()
}

// GetByID obtiene una pertenencia por ID, enriquecida
func (r *PertenenciaRepository) GetByID(id int) (*models.PertenenciaDetallada, error) {
	query := pertenenciaDetalleSelect + " WHERE pe.id = $1"

	var pertenencia models.PertenenciaDetallada
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&pertenencia.ID, &pertenencia.IDConjunto, &pertenencia.IDProducto, &pertenencia.CreatedAt,
		&pertenencia.ConjuntoNombre, &pertenencia.ConjuntoSitio,
		&pertenencia.ProductoNombre, &pertenencia.ProductoCantidad,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("pertenencia", id)
		}
		return nil, &models.QueryError{Op: "get pertenencia", Err: err}
	}

	return &pertenencia, nil
}

// GetByProducto obtiene la pertenencia de un producto. Lo usa el importador
// de precios.
func (r *PertenenciaRepository) GetByProducto(idProducto int) (*models.Pertenencia, error) {
	query := `
		SELECT id, id_conjunto, id_producto, created_at
		FROM pertenencia
		WHERE id_producto = $1
	`

	var pertenencia models.Pertenencia
	err := r.db.QueryRowWithTimeout(query, idProducto).Scan(
		&pertenencia.ID, &pertenencia.IDConjunto, &pertenencia.IDProducto, &pertenencia.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("pertenencia", idProducto)
		}
		return nil, &models.QueryError{Op: "get pertenencia by producto", Err: err}
	}

	return &pertenencia, nil
}

// Exists verifica si el par (conjunto, producto) ya está registrado. El
// esquema no impone unicidad sobre el par; se valida aquí al insertar.
func (r *PertenenciaRepository) Exists(idConjunto, idProducto int) (bool, error) {
	query := "SELECT id FROM pertenencia WHERE id_conjunto = $1 AND id_producto = $2"

	var id int
	err := r.db.QueryRowWithTimeout(query, idConjunto, idProducto).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &models.QueryError{Op: "exists pertenencia", Err: err}
	}
	return true, nil
}

// Create inserta una pertenencia nueva. El llamador debe haber verificado
// Exists primero para no duplicar el par.
func (r *PertenenciaRepository) Create(idConjunto, idProducto int) error {
	query := "INSERT INTO pertenencia (id_conjunto, id_producto, created_at) VALUES ($1, $2, NOW())"

	if _, err := r.db.ExecWithTimeout(query, idConjunto, idProducto); err != nil {
		return &models.QueryError{Op: "create pertenencia", Err: err}
	}

	return nil
}
