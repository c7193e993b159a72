package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/splashmix/catalog-service/internal/models"
)

// ProductoRepository maneja las operaciones de base de datos para Producto
type ProductoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewProductoRepository crea una nueva instancia del repositorio
func NewProductoRepository(db *DB, logger *logrus.Logger) *ProductoRepository {
	return &ProductoRepository{
		db:     db,
		logger: logger,
	}
}

// Cadena fija de joins para la raíz Producto. El join es LEFT para que un
// producto con tipo colgante aparezca con el nombre de tipo en null.
const productoDetalleSelect = `
	SELECT p.id, p.nombre, p.cantidad, p.id_tipo_producto, p.precio_base, p.created_at,
	       tp.nombre
	FROM producto p
	LEFT JOIN tipo_producto tp ON p.id_tipo_producto = tp.id
`

// Count cuenta el total de productos
func (r *ProductoRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRowWithTimeout("SELECT COUNT(*) FROM producto p").Scan(&total)
	if err != nil {
		return 0, &models.QueryError{Op: "count producto", Err: err}
	}
	return total, nil
}

// List obtiene productos con paginación, enriquecidos con su tipo
func (r *ProductoRepository) List(page models.PageParams) ([]models.ProductoDetallado, error) {
	query := productoDetalleSelect + " ORDER BY p.id LIMIT $1 OFFSET $2"

	rows, err := r.db.QueryWithTimeout(query, page.Limit, page.Skip)
	if err != nil {
		return nil, &models.QueryError{Op: "list producto", Err: err}
	}
	defer rows.Close()

	productos := []models.ProductoDetallado{}
	for rows.Next() {
		var producto models.ProductoDetallado
		err := rows.Scan(
			&producto.ID, &producto.Nombre, &producto.Cantidad,
			&producto.IDTipoProducto, &producto.PrecioBase, &producto.CreatedAt,
			&producto.TipoProductoNombre,
		)
		if err != nil {
			return nil, &models.QueryError{Op: "scan producto", Err: err}
		}
		productos = append(productos, producto)
	}

	return productos, rows.Err()
}

// GetByID obtiene un producto por ID, enriquecido con su tipo
func (r *ProductoRepository) GetByID(id int) (*models.ProductoDetallado, error) {
	query := productoDetalleSelect + " WHERE p.id = $1"

	var producto models.ProductoDetallado
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&producto.ID, &producto.Nombre, &producto.Cantidad,
		&producto.IDTipoProducto, &producto.PrecioBase, &producto.CreatedAt,
		&producto.TipoProductoNombre,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("producto", id)
		}
		return nil, &models.QueryError{Op: "get producto", Err: err}
	}

	return &producto, nil
}

// GetByCantidad obtiene el producto que otorga exactamente esa cantidad de
// unidades. Lo usa el importador de precios para ligar cada precio semilla
// con su producto.
func (r *ProductoRepository) GetByCantidad(cantidad int) (*models.ProductoDetallado, error) {
	query := productoDetalleSelect + " WHERE p.cantidad = $1"

	var producto models.ProductoDetallado
	err := r.db.QueryRowWithTimeout(query, cantidad).Scan(
		&producto.ID, &producto.Nombre, &producto.Cantidad,
		&producto.IDTipoProducto, &producto.PrecioBase, &producto.CreatedAt,
		&producto.TipoProductoNombre,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("producto", cantidad)
		}
		return nil, &models.QueryError{Op: "get producto by cantidad", Err: err}
	}

	return &producto, nil
}

// Upsert inserta o actualiza un producto por su ID natural de la hoja de
// cálculo
func (r *ProductoRepository) Upsert(producto *models.Producto) error {
	query := `
		INSERT INTO producto (id, nombre, cantidad, id_tipo_producto, precio_base, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			cantidad = EXCLUDED.cantidad,
			id_tipo_producto = EXCLUDED.id_tipo_producto,
			precio_base = EXCLUDED.precio_base
	`

	_, err := r.db.ExecWithTimeout(query,
		producto.ID, producto.Nombre, producto.Cantidad,
		producto.IDTipoProducto, producto.PrecioBase,
	)
	if err != nil {
		return &models.QueryError{Op: "upsert producto", Err: err}
	}

	return nil
}
