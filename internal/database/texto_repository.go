package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// TextoFilter acumula los filtros opcionales de la raíz Texto.
type TextoFilter struct {
	IDPais         *string
	IDTipoProducto *int
}

func (o TextoFilter) filter() *Filter {
	f := &Filter{}
	if o.IDPais != nil {
		f.Equals("t.id_pais", *o.IDPais)
	}
	if o.IDTipoProducto != nil {
		f.Equals("t.id_tipo_producto", *o.IDTipoProducto)
	}
	return f
}

// TextoRepository maneja las operaciones de base de datos para Texto
type TextoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewTextoRepository crea una nueva instancia del repositorio
func NewTextoRepository(db *DB, logger *logrus.Logger) *TextoRepository {
	return &TextoRepository{
		db:     db,
		logger: logger,
	}
}

// Cadena fija de joins para la raíz Texto, todos LEFT.
const textoDetalleSelect = `
	SELECT t.id, t.id_tipo_producto, t.id_pais, t.unidad, t.unidades, t.created_at,
	       tp.nombre, pa.nombre
	FROM textos t
	LEFT JOIN tipo_producto tp ON t.id_tipo_producto = tp.id
	LEFT JOIN pais pa ON t.id_pais = pa.id
`

// Count cuenta los textos que satisfacen el filtro
func (r *TextoRepository) Count(opts TextoFilter) (int, error) {
	f := opts.filter()
	query := "SELECT COUNT(*) FROM textos t" + f.Where()

	var total int
	if err := r.db.QueryRowWithTimeout(query, f.Args()...).Scan(&total); err != nil {
		return 0, &models.QueryError{Op: "count textos", Err: err}
	}
	return total, nil
}

// List obtiene textos filtrados y paginados, enriquecidos con tipo y país
func (r *TextoRepository) List(opts TextoFilter, page models.PageParams) ([]models.TextoDetallado, error) {
	f := opts.filter()
	window, args := f.Window(page.Limit, page.Skip)
	query := textoDetalleSelect + f.Where() + " ORDER BY t.id" + window

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, &models.QueryError{Op: "list textos", Err: err}
	}
	defer rows.Close()

	textos := []models.TextoDetallado{}
	for rows.Next() {
		var texto models.TextoDetallado
		err := rows.Scan(
			&texto.ID, &texto.IDTipoProducto, &texto.IDPais,
			&texto.Unidad, &texto.Unidades, &texto.CreatedAt,
			&texto.TipoProductoNombre, &texto.PaisNombre,
		)
		if err != nil {
			return nil, &models.QueryError{Op: "scan textos", Err: err}
		}
		textos = append(textos, texto)
	}

	return textos, rows.Err()
}

// GetByID obtiene un texto por ID, enriquecido
func (r *TextoRepository) GetByID(id int) (*models.TextoDetallado, error) {
	query := textoDetalleSelect + " WHERE t.id = $1"

	var texto models.TextoDetallado
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&texto.ID, &texto.IDTipoProducto, &texto.IDPais,
		&texto.Unidad, &texto.Unidades, &texto.CreatedAt,
		&texto.TipoProductoNombre, &texto.PaisNombre,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("texto", id)
		}
		return nil, &models.QueryError{Op: "get texto", Err: err}
	}

	return &texto, nil
}

// Upsert inserta o actualiza el texto de un (tipo, país). El esquema no
// impone unicidad sobre el par; el importador lo resuelve con un update
// previo y un insert condicional.
func (r *TextoRepository) Upsert(texto *models.Texto) error {
	update := `
		UPDATE textos SET unidad = $3, unidades = $4
		WHERE id_tipo_producto = $1 AND id_pais = $2
	`
	result, err := r.db.ExecWithTimeout(update,
		texto.IDTipoProducto, texto.IDPais, texto.Unidad, texto.Unidades,
	)
	if err != nil {
		return &models.QueryError{Op: "upsert textos", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &models.QueryError{Op: "upsert textos", Err: err}
	}
	if affected > 0 {
		return nil
	}

	insert := `
		INSERT INTO textos (id_tipo_producto, id_pais, unidad, unidades, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	if _, err := r.db.ExecWithTimeout(insert,
		texto.IDTipoProducto, texto.IDPais, texto.Unidad, texto.Unidades,
	); err != nil {
		return &models.QueryError{Op: "upsert textos", Err: err}
	}

	return nil
}
