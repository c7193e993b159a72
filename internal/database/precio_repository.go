package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// PrecioFilter acumula los filtros opcionales de la raíz Precio. Un campo nil
// no agrega predicado; los predicados presentes se combinan con AND y la
// misma lista alimenta el conteo y los datos.
type PrecioFilter struct {
	IDPertenencia *int
	IDPais        *string
	Ambiente      *string
}

func (o PrecioFilter) filter() *Filter {
	f := &Filter{}
	if o.IDPertenencia != nil {
		f.Equals("pr.id_pertenencia", *o.IDPertenencia)
	}
	if o.IDPais != nil {
		f.Equals("pr.id_pais", *o.IDPais)
	}
	if o.Ambiente != nil {
		f.Equals("pr.ambiente", *o.Ambiente)
	}
	return f
}

// PrecioRepository maneja las operaciones de base de datos para Precio
type PrecioRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewPrecioRepository crea una nueva instancia del repositorio
func NewPrecioRepository(db *DB, logger *logrus.Logger) *PrecioRepository {
	return &PrecioRepository{
		db:     db,
		logger: logger,
	}
}

// Cadena fija de joins para la raíz Precio:
// precio → pertenencia → producto → tipo_producto, pertenencia → conjunto y
// precio → país. Todos los joins son LEFT: un precio con referencia colgante
// se devuelve con los campos de enriquecimiento en null, nunca se descarta.
const precioDetalleSelect = `
	SELECT pr.id, pr.nombre, pr.id_pertenencia, pr.id_pais, pr.price_id,
	       pr.cantidad_precio, pr.ratio_imagen, pr.status, pr.ambiente, pr.created_at,
	       pe.id, p.nombre, p.cantidad,
	       tp.nombre, c.nombre,
	       pa.nombre, pa.moneda, pa.simbolo, pa.side, pa.decs
	FROM precio pr
	LEFT JOIN pertenencia pe ON pr.id_pertenencia = pe.id
	LEFT JOIN producto p ON pe.id_producto = p.id
	LEFT JOIN tipo_producto tp ON p.id_tipo_producto = tp.id
	LEFT JOIN conjunto c ON pe.id_conjunto = c.id
	LEFT JOIN pais pa ON pr.id_pais = pa.id
`

func scanPrecioDetallado(scan func(dest ...interface{}) error, precio *models.PrecioDetallado) error {
	return scan(
		&precio.ID, &precio.Nombre, &precio.IDPertenencia, &precio.IDPais, &precio.PriceID,
		&precio.CantidadPrecio, &precio.RatioImagen, &precio.Status, &precio.Ambiente, &precio.CreatedAt,
		&precio.PertenenciaID, &precio.ProductoNombre, &precio.ProductoCantidad,
		&precio.TipoProductoNombre, &precio.ConjuntoNombre,
		&precio.PaisNombre, &precio.PaisMoneda, &precio.PaisSimbolo,
		&precio.PaisSide, &precio.PaisDecs,
	)
}

// Count cuenta los precios que satisfacen el filtro. Los predicados y los
// parámetros son exactamente los mismos que en List para que el total
// reportado corresponda a la página.
func (r *PrecioRepository) Count(opts PrecioFilter) (int, error) {
	f := opts.filter()
	query := "SELECT COUNT(*) FROM precio pr" + f.Where()

	var total int
	if err := r.db.QueryRowWithTimeout(query, f.Args()...).Scan(&total); err != nil {
		return 0, &models.QueryError{Op: "count precio", Err: err}
	}
	return total, nil
}

// List obtiene precios filtrados y paginados con el grafo de joins completo
func (r *PrecioRepository) List(opts PrecioFilter, page models.PageParams) ([]models.PrecioDetallado, error) {
	f := opts.filter()
	window, args := f.Window(page.Limit, page.Skip)
	query := precioDetalleSelect + f.Where() + " ORDER BY pr.id" + window

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, &models.QueryError{Op: "list precio", Err: err}
	}
	defer rows.Close()

	precios := []models.PrecioDetallado{}
	for rows.Next() {
		var precio models.PrecioDetallado
		if err := scanPrecioDetallado(rows.Scan, &precio); err != nil {
			return nil, &models.QueryError{Op: "scan precio", Err: err}
		}
		precios = append(precios, precio)
	}

	return precios, rows.Err()
}

// GetByID obtiene un precio por ID con el grafo de joins completo. Cero filas
// es NotFound, nunca un registro lleno de nulls.
func (r *PrecioRepository) GetByID(id int) (*models.PrecioDetallado, error) {
	query := precioDetalleSelect + " WHERE pr.id = $1"

	var precio models.PrecioDetallado
	err := scanPrecioDetallado(r.db.QueryRowWithTimeout(query, id).Scan, &precio)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("precio", id)
		}
		return nil, &models.QueryError{Op: "get precio", Err: err}
	}

	return &precio, nil
}

// Insert inserta un precio nuevo. Lo usa el importador de semillas.
func (r *PrecioRepository) Insert(precio *models.Precio) error {
	query := `
		INSERT INTO precio (nombre, id_pertenencia, id_pais, price_id,
		                    cantidad_precio, ratio_imagen, status, ambiente, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.db.ExecWithTimeout(query,
		precio.Nombre, precio.IDPertenencia, precio.IDPais, precio.PriceID,
		precio.CantidadPrecio, precio.RatioImagen, precio.Status, precio.Ambiente,
	)
	if err != nil {
		return &models.QueryError{Op: "insert precio", Err: err}
	}

	return nil
}

// ExistsByPriceID verifica si ya hay un precio con ese identificador del
// proveedor de pagos, para que el importador sea idempotente.
func (r *PrecioRepository) ExistsByPriceID(priceID string) (bool, error) {
	var id int
	err := r.db.QueryRowWithTimeout("SELECT id FROM precio WHERE price_id = $1", priceID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &models.QueryError{Op: "exists precio", Err: err}
	}
	return true, nil
}

// RecomputeNombres reconstruye el nombre derivado de cada precio re-haciendo
// el join precio → pertenencia → conjunto/producto → tipo_producto. Usa JOIN
// interno a propósito: un precio con referencias colgantes no tiene datos
// para armar el nombre y se deja intacto. Retorna cuántas filas se
// actualizaron.
func (r *PrecioRepository) RecomputeNombres() (int, error) {
	query := `
		SELECT pr.id, pr.id_pais, c.sitio, p.cantidad, tp.nombre, pr.ambiente
		FROM precio pr
		JOIN pertenencia pe ON pr.id_pertenencia = pe.id
		JOIN conjunto c ON pe.id_conjunto = c.id
		JOIN producto p ON pe.id_producto = p.id
		JOIN tipo_producto tp ON p.id_tipo_producto = tp.id
	`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return 0, &models.QueryError{Op: "recompute nombres", Err: err}
	}
	defer rows.Close()

	type fila struct {
		id       int
		idPais   string
		sitio    string
		cantidad int
		tipo     string
		ambiente *string
	}

	filas := []fila{}
	for rows.Next() {
		var f fila
		if err := rows.Scan(&f.id, &f.idPais, &f.sitio, &f.cantidad, &f.tipo, &f.ambiente); err != nil {
			return 0, &models.QueryError{Op: "scan recompute nombres", Err: err}
		}
		filas = append(filas, f)
	}
	if err := rows.Err(); err != nil {
		return 0, &models.QueryError{Op: "recompute nombres", Err: err}
	}

	updated := 0
	err = r.db.WithTransaction(func(tx *sql.Tx) error {
		for _, f := range filas {
			ambiente := ""
			if f.ambiente != nil {
				ambiente = *f.ambiente
			}
			nombre := models.BuildNombrePrecio(f.idPais, f.sitio, f.cantidad, f.tipo, ambiente)

			if _, err := tx.Exec("UPDATE precio SET nombre = $1 WHERE id = $2", nombre, f.id); err != nil {
				return &models.QueryError{Op: "update nombre precio", Err: err}
			}

			r.logger.WithFields(logrus.Fields{
				"precio_id": f.id,
				"nombre":    nombre,
			}).Debug("Precio name recomputed")
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return updated, nil
}
